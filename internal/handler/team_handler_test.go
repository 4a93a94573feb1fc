package handler

import (
	"net/http"
	"strings"
	"testing"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"
	"teamhub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNewTeamHandler(t *testing.T) {
	svc := mocks.NewMockTeamServicer(gomock.NewController(t))
	h := NewTeamHandler(svc)

	assert.NotNil(t, h)
	assert.Equal(t, svc, h.service)
}

func TestTeamHandler_CreateTeam(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Owner"}

	tests := []struct {
		name           string
		user           *models.User
		body           interface{}
		mockSetup      func(*mocks.MockTeamServicer)
		expectedStatus int
	}{
		{
			name: "created",
			user: user,
			body: models.CreateTeamRequest{Name: "Acme"},
			mockSetup: func(m *mocks.MockTeamServicer) {
				m.EXPECT().CreateTeam(gomock.Any(), user, &models.CreateTeamRequest{Name: "Acme"}).
					Return(&models.Team{ID: primitive.NewObjectID(), Name: "Acme", OwnerID: user.ID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			body:           models.CreateTeamRequest{Name: "Acme"},
			mockSetup:      func(*mocks.MockTeamServicer) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "name required",
			user:           user,
			body:           map[string]string{},
			mockSetup:      func(*mocks.MockTeamServicer) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTeamServicer(gomock.NewController(t))
			tt.mockSetup(svc)

			router := gin.New()
			router.POST("/teams", withContext(tt.user, nil), NewTeamHandler(svc).CreateTeam)

			w := serve(router, http.MethodPost, "/teams", jsonBody(t, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTeamHandler_ListTeams(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	svc := mocks.NewMockTeamServicer(gomock.NewController(t))
	svc.EXPECT().AllTeams(gomock.Any(), user).Return([]models.Team{{Name: "Alpha"}, {Name: "beta"}}, nil)

	router := gin.New()
	router.GET("/teams", withContext(user, nil), NewTeamHandler(svc).ListTeams)

	w := serve(router, http.MethodGet, "/teams", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w).Data["items"].([]interface{})
	assert.Len(t, items, 2)
}

func TestTeamHandler_Settings(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme", OwnerID: user.ID}

	t.Run("returns settings", func(t *testing.T) {
		svc := mocks.NewMockTeamServicer(gomock.NewController(t))
		svc.EXPECT().Settings(gomock.Any(), team, user).Return(&models.TeamSettingsResponse{
			Team:            *team,
			CurrentUserRole: models.RoleOwner,
			Permissions:     []string{"*"},
		}, nil)

		router := gin.New()
		router.GET("/teams/:teamId/settings", withContext(user, team), NewTeamHandler(svc).Settings)

		w := serve(router, http.MethodGet, "/teams/"+team.ID.Hex()+"/settings", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "owner", decode(t, w).Data["currentUserRole"])
	})

	t.Run("service failure", func(t *testing.T) {
		svc := mocks.NewMockTeamServicer(gomock.NewController(t))
		svc.EXPECT().Settings(gomock.Any(), team, user).Return(nil, apperrors.ErrTeamNotFound)

		router := gin.New()
		router.GET("/teams/:teamId/settings", withContext(user, team), NewTeamHandler(svc).Settings)

		w := serve(router, http.MethodGet, "/teams/"+team.ID.Hex()+"/settings", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTeamHandler_UpdateTeam(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme"}

	t.Run("renames", func(t *testing.T) {
		svc := mocks.NewMockTeamServicer(gomock.NewController(t))
		svc.EXPECT().UpdateTeam(gomock.Any(), team, &models.UpdateTeamRequest{Name: "Acme Corp"}).
			Return(&models.Team{ID: team.ID, Name: "Acme Corp"}, nil)

		router := gin.New()
		router.PUT("/teams/:teamId", withContext(nil, team), NewTeamHandler(svc).UpdateTeam)

		w := serve(router, http.MethodPut, "/teams/"+team.ID.Hex(), jsonBody(t, models.UpdateTeamRequest{Name: "Acme Corp"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Acme Corp", decode(t, w).Data["name"])
	})

	t.Run("name too long", func(t *testing.T) {
		svc := mocks.NewMockTeamServicer(gomock.NewController(t))

		router := gin.New()
		router.PUT("/teams/:teamId", withContext(nil, team), NewTeamHandler(svc).UpdateTeam)

		w := serve(router, http.MethodPut, "/teams/"+team.ID.Hex(), jsonBody(t, models.UpdateTeamRequest{Name: strings.Repeat("a", 256)}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decode(t, w).Fields, "name")
	})
}
