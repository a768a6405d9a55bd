// Package queries contains the read-only use cases of the weight service.
// Queries carry primitive request data; handlers resolve unit symbols through
// the unit repository, build the domain objects and ask the domain services
// for weights. Nothing is persisted.
package queries
