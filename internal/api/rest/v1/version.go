package v1

// BasePath is the URL prefix for this API version.
const BasePath = "/api/v1"
