// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the records mirrored from the remote content API,
// the inputs sent with its mutations, and the GraphQL envelope types shared by
// the transport and synchronization layers.
package models

// Record is implemented by every entity that can live in a mirrored
// collection. RecordID returns the server-assigned identifier, or the zero ID
// when the record has not been confirmed by the server.
type Record interface {
	RecordID() ID
}

// Entity names a mirrored entity set.
type Entity string

const (
	EntityPost        Entity = "post"
	EntityCategory    Entity = "category"
	EntitySubCategory Entity = "subcategory"
	EntityItem        Entity = "item"
)

// String implements fmt.Stringer.
func (e Entity) String() string {
	return string(e)
}

// Plural returns the display name used for collections of the entity.
func (e Entity) Plural() string {
	switch e {
	case EntityCategory:
		return "categories"
	case EntitySubCategory:
		return "subcategories"
	default:
		return string(e) + "s"
	}
}

// ParseEntity maps a user-supplied name (singular or plural, any case used by
// the CLI) onto an Entity.
func ParseEntity(name string) (Entity, bool) {
	switch name {
	case "post", "posts":
		return EntityPost, true
	case "category", "categories":
		return EntityCategory, true
	case "subcategory", "subcategories", "sub-category", "sub-categories":
		return EntitySubCategory, true
	case "item", "items":
		return EntityItem, true
	}
	return "", false
}
