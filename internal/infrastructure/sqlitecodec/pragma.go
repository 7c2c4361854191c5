package sqlitecodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// keyLiteral renders key as a raw-key hex literal (x'..'). The hex form
// sidesteps quoting entirely, so arbitrary key bytes pass through verbatim.
func keyLiteral(key []byte) string {
	return fmt.Sprintf("x'%s'", strings.ToUpper(hex.EncodeToString(key)))
}

// keyPragma renders a PRAGMA statement carrying the key as a raw-key hex
// literal.
func keyPragma(verb string, key []byte) string {
	return fmt.Sprintf(`PRAGMA %s = "%s"`, verb, keyLiteral(key))
}
