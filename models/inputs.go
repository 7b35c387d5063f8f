// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// The input types below are serialised as GraphQL variables; the JSON names
// match the variable names declared by the remote mutations. Create and update
// share one input per entity and update always sends the full field set.

// CategoryInput carries the fields of a category mutation and doubles as the
// nested relation input of subcategories and posts.
type CategoryInput struct {
	ID            ID                 `json:"id,omitempty"`
	Title         string             `json:"title"`
	Slug          string             `json:"cSlug"`
	SubCategories []SubCategoryInput `json:"subCategories,omitempty"`
}

// SubCategoryInput carries the fields of a subcategory mutation and doubles as
// the nested relation input of categories, posts and items.
type SubCategoryInput struct {
	ID         ID              `json:"id,omitempty"`
	Title      string          `json:"title,omitempty"`
	Slug       string          `json:"sSlug,omitempty"`
	Categories []CategoryInput `json:"categories,omitempty"`
}

// PostInput carries the fields of a post mutation.
type PostInput struct {
	Title         string             `json:"title"`
	Content       string             `json:"content"`
	Slug          string             `json:"slug,omitempty"`
	ImgAuthor     string             `json:"imgAuthor,omitempty"`
	Reads         int                `json:"reads"`
	Categories    []CategoryInput    `json:"categories,omitempty"`
	SubCategories []SubCategoryInput `json:"subCategories,omitempty"`
	Items         []ItemInput        `json:"items,omitempty"`
}

// ItemInput carries the fields of an item mutation. When used as a nested
// post relation, a bare ID selects an existing item.
type ItemInput struct {
	ID            ID                 `json:"id,omitempty"`
	Name          string             `json:"name,omitempty"`
	Description   string             `json:"description,omitempty"`
	Content       string             `json:"content,omitempty"`
	Number        string             `json:"number,omitempty"`
	Price         string             `json:"price,omitempty"`
	Slug          string             `json:"slug,omitempty"`
	Links         []Link             `json:"links,omitempty"`
	SubCategories []SubCategoryInput `json:"subCategories,omitempty"`
	Genres        []GenreInput       `json:"genres,omitempty"`
}

// GenreInput is the nested genre relation input of items.
type GenreInput struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}
