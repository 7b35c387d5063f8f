package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-content-keeper/models"
)

// entityRemote implements [Remote] for one entity on top of its document.
type entityRemote[T models.Record, I any] struct {
	client *GraphQLClient
	doc    document
}

func newEntityRemote[T models.Record, I any](client *GraphQLClient, doc document) Remote[T, I] {
	return &entityRemote[T, I]{client: client, doc: doc}
}

func (r *entityRemote[T, I]) List(ctx context.Context) ([]T, error) {
	data, err := r.client.Do(ctx, models.GraphQLRequest{
		Query:         r.doc.list,
		OperationName: r.doc.listOp,
	})
	if err != nil {
		return nil, err
	}

	var records []T
	if err = decodeField(data, r.doc.listField, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *entityRemote[T, I]) Create(ctx context.Context, input I) (T, error) {
	var zero T

	vars, err := inputVariables(input)
	if err != nil {
		return zero, err
	}

	data, err := r.client.Do(ctx, models.GraphQLRequest{
		Query:         r.doc.create,
		OperationName: r.doc.createOp,
		Variables:     vars,
	})
	if err != nil {
		return zero, err
	}

	var created *T
	if err = decodeField(data, r.doc.createField, &created); err != nil {
		return zero, err
	}
	if created == nil {
		return zero, NewResponseError(ErrServer, http.StatusOK, "",
			fmt.Sprintf("%s returned no record", r.doc.createField))
	}

	return *created, nil
}

func (r *entityRemote[T, I]) Update(ctx context.Context, id models.ID, input I) (T, error) {
	var zero T

	vars, err := inputVariables(input)
	if err != nil {
		return zero, err
	}
	vars[r.doc.updateIDVar] = id.String()

	data, err := r.client.Do(ctx, models.GraphQLRequest{
		Query:         r.doc.update,
		OperationName: r.doc.updateOp,
		Variables:     vars,
	})
	if err != nil {
		return zero, err
	}

	var updated *T
	if err = decodeField(data, r.doc.updateField, &updated); err != nil {
		return zero, err
	}
	if updated == nil {
		return zero, NewResponseError(ErrNotFound, http.StatusOK, "",
			fmt.Sprintf("record %s does not exist", id))
	}

	return *updated, nil
}

func (r *entityRemote[T, I]) Delete(ctx context.Context, ids []models.ID) ([]models.ID, error) {
	data, err := r.client.Do(ctx, models.GraphQLRequest{
		Query:         r.doc.delete,
		OperationName: r.doc.deleteOp,
		Variables:     map[string]any{"ids": models.IDsToStrings(ids)},
	})
	if err != nil {
		return nil, err
	}

	var result models.DeleteResult
	if err = decodeField(data, r.doc.deleteField, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, NewResponseError(ErrServer, http.StatusOK, "",
			fmt.Sprintf("%s was not acknowledged", r.doc.deleteField))
	}
	if result.HasIDs {
		return result.IDs, nil
	}

	return ids, nil
}

// Remotes bundles the remote side of every entity.
type Remotes struct {
	Posts         Remote[models.Post, models.PostInput]
	Categories    Remote[models.Category, models.CategoryInput]
	SubCategories Remote[models.SubCategory, models.SubCategoryInput]
	Items         Remote[models.Item, models.ItemInput]
}

// NewRemotes wires all four entities to client.
func NewRemotes(client *GraphQLClient) *Remotes {
	return &Remotes{
		Posts:         newEntityRemote[models.Post, models.PostInput](client, postDocument),
		Categories:    newEntityRemote[models.Category, models.CategoryInput](client, categoryDocument),
		SubCategories: newEntityRemote[models.SubCategory, models.SubCategoryInput](client, subCategoryDocument),
		Items:         newEntityRemote[models.Item, models.ItemInput](client, itemDocument),
	}
}
