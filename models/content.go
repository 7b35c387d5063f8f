// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is a top-level content category.
type Category struct {
	ID            ID               `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"cSlug"`
	SubCategories []SubCategoryRef `json:"SubCategories,omitempty"`
}

// RecordID implements [Record].
func (c Category) RecordID() ID { return c.ID }

// SubCategory is a category child; it may belong to several categories.
type SubCategory struct {
	ID         ID            `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"sSlug"`
	Categories []CategoryRef `json:"Categories,omitempty"`
}

// RecordID implements [Record].
func (s SubCategory) RecordID() ID { return s.ID }

// Post is an article with its relations to categories, subcategories and
// items.
type Post struct {
	ID            ID               `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug,omitempty"`
	Content       string           `json:"content"`
	ImgAuthor     string           `json:"imgAuthor,omitempty"`
	Reads         int              `json:"reads,omitempty"`
	Image         *Media           `json:"image,omitempty"`
	Categories    []CategoryRef    `json:"Categories,omitempty"`
	SubCategories []SubCategoryRef `json:"SubCategories,omitempty"`
	Items         []Item           `json:"items,omitempty"`
}

// RecordID implements [Record].
func (p Post) RecordID() ID { return p.ID }

// Item is a catalogue entry referenced by posts. Genres classify it.
type Item struct {
	ID            ID               `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Content       string           `json:"content,omitempty"`
	Number        string           `json:"number,omitempty"`
	Price         string           `json:"price,omitempty"`
	Slug          string           `json:"slug,omitempty"`
	Date          string           `json:"date,omitempty"`
	Links         []Link           `json:"links,omitempty"`
	Media         []Media          `json:"media,omitempty"`
	SubCategories []SubCategoryRef `json:"SubCategories,omitempty"`
	Genres        []Genre          `json:"genres,omitempty"`
}

// RecordID implements [Record].
func (i Item) RecordID() ID { return i.ID }

// Genre classifies items.
type Genre struct {
	ID    ID     `json:"id,omitempty"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

// Link is a named external URL attached to an item.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Media is an uploaded asset reference.
type Media struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

// CategoryRef is the projection of a category embedded in other records.
type CategoryRef struct {
	ID    ID     `json:"id,omitempty"`
	Title string `json:"title"`
	Slug  string `json:"cSlug,omitempty"`
}

// SubCategoryRef is the projection of a subcategory embedded in other
// records.
type SubCategoryRef struct {
	ID    ID     `json:"id,omitempty"`
	Title string `json:"title"`
	Slug  string `json:"sSlug,omitempty"`
}
