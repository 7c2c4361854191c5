// Package models contains the GORM database models backing the domain
// entities, kept separate so persistence concerns stay out of the domain.
package models
