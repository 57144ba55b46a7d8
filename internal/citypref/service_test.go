package citypref_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/nomadmatch/internal/citypref"
)

func TestService_Set(t *testing.T) {
	userID := uuid.New()

	type args struct {
		cityName string
		action   citypref.Action
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *citypref.MockRepository)
		wantErr   error
		wantCity  string
	}

	tests := []testCase{
		{
			name: "Like",
			args: args{cityName: "Lisbon", action: citypref.ActionLike},
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *citypref.Preference) error {
						assert.Equal(t, userID, p.UserID)
						assert.Equal(t, citypref.ActionLike, p.Action)
						p.CreatedAt = time.Now()
						return nil
					})
			},
			wantCity: "Lisbon",
		},
		{
			name: "TrimsCityName",
			args: args{cityName: "  Berlin ", action: citypref.ActionDislike},
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCity: "Berlin",
		},
		{
			name:    "InvalidAction",
			args:    args{cityName: "Lisbon", action: "love"},
			wantErr: citypref.ErrInvalidAction,
		},
		{
			name:    "EmptyCity",
			args:    args{cityName: "   ", action: citypref.ActionLike},
			wantErr: citypref.ErrEmptyCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := citypref.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := citypref.NewService(repo).Set(context.Background(), userID, tt.args.cityName, tt.args.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCity, got.CityName)
		})
	}
}

func TestService_Set_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := citypref.NewMockRepository(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	_, err := citypref.NewService(repo).Set(context.Background(), uuid.New(), "Lisbon", citypref.ActionLike)
	assert.Error(t, err)
}

func TestService_List(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name         string
		setupMock    func(m *citypref.MockRepository)
		wantLikes    []string
		wantDislikes []string
		wantErr      bool
	}

	tests := []testCase{
		{
			name: "SplitsByAction",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().List(gomock.Any(), userID).Return([]*citypref.Preference{
					{UserID: userID, CityName: "Lisbon", Action: citypref.ActionLike},
					{UserID: userID, CityName: "Berlin", Action: citypref.ActionDislike},
					{UserID: userID, CityName: "Porto", Action: citypref.ActionLike},
				}, nil)
			},
			wantLikes:    []string{"Lisbon", "Porto"},
			wantDislikes: []string{"Berlin"},
		},
		{
			name: "Empty",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().List(gomock.Any(), userID).Return(nil, nil)
			},
			wantLikes:    []string{},
			wantDislikes: []string{},
		},
		{
			name: "Error",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := citypref.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := citypref.NewService(repo).List(context.Background(), userID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, got.UserID)
			assert.NotNil(t, got.Preferences)
			assert.Equal(t, tt.wantLikes, got.Likes)
			assert.Equal(t, tt.wantDislikes, got.Dislikes)
		})
	}
}

func TestService_Delete(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *citypref.MockRepository)
		wantErr   error
		anyErr    bool
	}

	tests := []testCase{
		{
			name: "Deleted",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().Delete(gomock.Any(), userID, "Lisbon").Return(true, nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().Delete(gomock.Any(), userID, "Lisbon").Return(false, nil)
			},
			wantErr: citypref.ErrNotFound,
		},
		{
			name: "RepoError",
			setupMock: func(m *citypref.MockRepository) {
				m.EXPECT().Delete(gomock.Any(), userID, "Lisbon").Return(false, errors.New("db error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := citypref.NewMockRepository(ctrl)
			tt.setupMock(repo)

			err := citypref.NewService(repo).Delete(context.Background(), userID, "Lisbon")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, citypref.ErrNotFound)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Disliked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := citypref.NewMockRepository(ctrl)
	repo.EXPECT().ListCities(gomock.Any(), userID, citypref.ActionDislike).Return([]string{"Berlin"}, nil)

	got, err := citypref.NewService(repo).Disliked(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Berlin"}, got)
}
