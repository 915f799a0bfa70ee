//go:build unit

package queries_test

import (
	"context"
	"testing"

	"campfinder/internal/usecase/queries"
	"campfinder/tests/common/builder"
	queriesmock "campfinder/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		repoErr error
		wantErr error
	}{
		{name: "active user", view: builder.NewUserBuilder().BuildReadModel()},
		{name: "inactive user", view: builder.NewUserBuilder().AsInactive().BuildReadModel(), wantErr: queries.ErrUserInactive},
		{name: "unknown user", repoErr: notFound(), wantErr: queries.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			q := queries.NewUserQueries(store)
			id := builder.NewUserBuilder().BuildReadModel().ID
			if tt.view != nil {
				id = tt.view.ID
			}

			store.EXPECT().FindByID(gomock.Any(), id).Return(tt.view, tt.repoErr)

			got, err := q.GetCurrentUser(ctx, id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}
