// Package models defines the persisted CRM entities the import pipeline
// writes: leads and the companies they reference.
package models
