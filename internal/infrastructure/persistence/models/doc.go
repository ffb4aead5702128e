// Package models contains the GORM persistence models behind the domain aggregates.
// Domain types carry no ORM tags; each model converts with ToDomain and a
// XModelFromDomain constructor.
package models
