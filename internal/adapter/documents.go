package adapter

// document holds the four GraphQL operations of one entity together with
// the root field each returns.
type document struct {
	listOp, listField, list       string
	createOp, createField, create string
	updateOp, updateField, update string
	deleteOp, deleteField, delete string

	// updateIDVar is the variable the update mutation takes the id in.
	updateIDVar string
}

const categoryFields = `
      id
      title
      cSlug
      SubCategories {
        id
        title
        sSlug
      }`

const subCategoryFields = `
      id
      title
      sSlug
      Categories {
        id
        title
        cSlug
      }`

const itemFields = `
      id
      name
      description
      content
      number
      price
      slug
      date
      links {
        name
        url
      }
      media {
        url
        public_id
      }
      SubCategories {
        id
        title
        sSlug
      }
      genres {
        id
        title
        genre
      }`

const postFields = `
      id
      title
      slug
      content
      imgAuthor
      reads
      image {
        url
        public_id
      }
      Categories {
        id
        title
        cSlug
      }
      SubCategories {
        id
        title
        sSlug
      }
      items {` + itemFields + `
      }`

var categoryDocument = document{
	listOp:    "GetCategories",
	listField: "Categories",
	list: `query GetCategories {
    Categories {` + categoryFields + `
    }
  }`,

	createOp:    "CreateCategory",
	createField: "createCategorie",
	create: `mutation CreateCategory($subCategories: [SubCategoryInput], $title: String!, $cSlug: String!) {
    createCategorie(subCategories: $subCategories, title: $title, cSlug: $cSlug) {` + categoryFields + `
    }
  }`,

	updateOp:    "UpdateCategory",
	updateField: "updatCategory",
	updateIDVar: "updatCategoryId",
	update: `mutation UpdateCategory($updatCategoryId: ID!, $title: String, $cSlug: String, $subCategories: [SubCategoryInput]) {
    updatCategory(id: $updatCategoryId, title: $title, cSlug: $cSlug, subCategories: $subCategories) {` + categoryFields + `
    }
  }`,

	deleteOp:    "DeleteCategory",
	deleteField: "deletCategory",
	delete: `mutation DeleteCategory($ids: [ID!]!) {
    deletCategory(ids: $ids) {
      id
    }
  }`,
}

var subCategoryDocument = document{
	listOp:    "GetSubCategories",
	listField: "SubCategories",
	list: `query GetSubCategories {
    SubCategories {` + subCategoryFields + `
    }
  }`,

	createOp:    "CreateSubCategory",
	createField: "createSubCategory",
	create: `mutation CreateSubCategory($title: String!, $sSlug: String!, $categories: [CategoryInput]) {
    createSubCategory(title: $title, sSlug: $sSlug, categories: $categories) {` + subCategoryFields + `
    }
  }`,

	updateOp:    "UpdatSubCategory",
	updateField: "updatSubCategory",
	updateIDVar: "updatSubCategoryId",
	update: `mutation UpdatSubCategory($updatSubCategoryId: ID!, $title: String, $sSlug: String, $categories: [CategoryInput]) {
    updatSubCategory(id: $updatSubCategoryId, title: $title, sSlug: $sSlug, categories: $categories) {` + subCategoryFields + `
    }
  }`,

	deleteOp:    "DeletSubCategory",
	deleteField: "deletSubCategory",
	delete: `mutation DeletSubCategory($ids: [ID!]!) {
    deletSubCategory(ids: $ids) {
      id
    }
  }`,
}

var postDocument = document{
	listOp:    "GetPosts",
	listField: "Posts",
	list: `query GetPosts {
    Posts {` + postFields + `
    }
  }`,

	createOp:    "CreatePost",
	createField: "createPost",
	create: `mutation CreatePost(
    $subCategories: [SubCategoryInput]
    $title: String!
    $content: String!
    $slug: String
    $imgAuthor: String!
    $reads: Int!
    $items: [ListItemInput]
  ) {
    createPost(
      subCategories: $subCategories
      title: $title
      content: $content
      slug: $slug
      imgAuthor: $imgAuthor
      reads: $reads
      items: $items
    ) {` + postFields + `
    }
  }`,

	updateOp:    "UpdatePost",
	updateField: "updatePost",
	updateIDVar: "id",
	update: `mutation UpdatePost(
    $id: ID!
    $title: String
    $content: String
    $slug: String
    $categories: [CategoryInput]
    $subCategories: [SubCategoryInput]
    $items: [ListItemInput!]
  ) {
    updatePost(
      id: $id
      title: $title
      content: $content
      slug: $slug
      categories: $categories
      subCategories: $subCategories
      items: $items
    ) {` + postFields + `
    }
  }`,

	deleteOp:    "DeletePosts",
	deleteField: "deletePosts",
	delete: `mutation DeletePosts($ids: [ID!]!) {
    deletePosts(ids: $ids) {
      id
    }
  }`,
}

var itemDocument = document{
	listOp:    "GetItems",
	listField: "Items",
	list: `query GetItems {
    Items {` + itemFields + `
    }
  }`,

	createOp:    "CreteItems",
	createField: "creteItems",
	create: `mutation CreteItems(
    $name: String
    $description: String
    $number: String
    $content: String
    $links: [LinkInput!]
    $subCategories: [SubCategoryInput]
    $genres: [genreInput]
  ) {
    creteItems(
      name: $name
      description: $description
      number: $number
      content: $content
      links: $links
      subCategories: $subCategories
      genres: $genres
    ) {` + itemFields + `
    }
  }`,

	updateOp:    "UpdateItems",
	updateField: "updateItems",
	updateIDVar: "updateItemsId",
	update: `mutation UpdateItems(
    $updateItemsId: ID!
    $name: String
    $description: String
    $price: String
    $links: [LinkInput!]
    $content: String
    $subCategories: [SubCategoryInput]
    $genres: [genreInput]
  ) {
    updateItems(
      id: $updateItemsId
      name: $name
      description: $description
      price: $price
      links: $links
      content: $content
      subCategories: $subCategories
      genres: $genres
    ) {` + itemFields + `
    }
  }`,

	deleteOp:    "DeletItems",
	deleteField: "deletItems",
	delete: `mutation DeletItems($ids: [ID!]!) {
    deletItems(ids: $ids) {
      id
    }
  }`,
}
