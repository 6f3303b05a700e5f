package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func NewListResponse[T any](items []T, next *queries.Cursor) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	resp := ListResponse[T]{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		resp.NextCursor = &after
	}
	return resp
}

// copyAll maps views onto response structs whose fields share names.
func copyAll[S, D any](src []S) ([]D, error) {
	dst := make([]D, 0, len(src))
	if err := copier.Copy(&dst, &src); err != nil {
		return nil, err
	}
	return dst, nil
}
