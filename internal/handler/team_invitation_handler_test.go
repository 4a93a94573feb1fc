package handler

import (
	"net/http"
	"testing"

	apperrors "teamhub/internal/errors"
	"teamhub/internal/models"
	"teamhub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const invitationUUID = "9b2f3c1e-6f0a-4c77-9a53-3f0b7b2c9d10"

func newInvitationRouter(t *testing.T, user *models.User, team *models.Team) (*gin.Engine, *mocks.MockTeamInvitationServicer) {
	svc := mocks.NewMockTeamInvitationServicer(gomock.NewController(t))
	h := NewTeamInvitationHandler(svc)

	router := gin.New()
	group := router.Group("/teams/:teamId/invitations", withContext(user, team))
	group.POST("", h.CreateInvitation)
	group.DELETE("/:invitation", h.DeleteInvitation)
	group.GET("/:invitation/accept", h.ShowInvitation)
	group.POST("/:invitation/accept", h.RegisterAndAccept)
	group.PUT("/:invitation/accept/auth", h.AcceptInvitation)
	return router, svc
}

func TestTeamInvitationHandler_CreateInvitation(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme"}
	path := "/teams/" + team.ID.Hex() + "/invitations"

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockTeamInvitationServicer)
		expectedStatus int
		expectedField  string
	}{
		{
			name: "created",
			body: models.CreateInvitationRequest{Email: "new@example.com", Role: "member"},
			mockSetup: func(m *mocks.MockTeamInvitationServicer) {
				m.EXPECT().StoreTeamInvitation(gomock.Any(), team, &models.CreateInvitationRequest{Email: "new@example.com", Role: "member"}).
					Return(&models.TeamInvitation{ID: primitive.NewObjectID(), TeamID: team.ID, Email: "new@example.com", UUID: invitationUUID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           models.CreateInvitationRequest{Email: "not-an-email", Role: "member"},
			mockSetup:      func(*mocks.MockTeamInvitationServicer) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "email",
		},
		{
			name:           "malformed role name",
			body:           models.CreateInvitationRequest{Email: "new@example.com", Role: "Team Admin"},
			mockSetup:      func(*mocks.MockTeamInvitationServicer) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "role",
		},
		{
			name: "role not in team",
			body: models.CreateInvitationRequest{Email: "new@example.com", Role: "billing"},
			mockSetup: func(m *mocks.MockTeamInvitationServicer) {
				m.EXPECT().StoreTeamInvitation(gomock.Any(), team, gomock.Any()).
					Return(nil, apperrors.NewInvalidArgument("role", "Invalid role selected."))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "role",
		},
		{
			name: "already invited",
			body: models.CreateInvitationRequest{Email: "new@example.com", Role: "member"},
			mockSetup: func(m *mocks.MockTeamInvitationServicer) {
				m.EXPECT().StoreTeamInvitation(gomock.Any(), team, gomock.Any()).Return(nil, apperrors.ErrPendingInvitation)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newInvitationRouter(t, nil, team)
			tt.mockSetup(svc)

			w := serve(router, http.MethodPost, path, jsonBody(t, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedField != "" {
				assert.Contains(t, decode(t, w).Fields, tt.expectedField)
			}
		})
	}
}

func TestTeamInvitationHandler_DeleteInvitation(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	team := &models.Team{ID: primitive.NewObjectID()}
	invitationID := primitive.NewObjectID()
	path := "/teams/" + team.ID.Hex() + "/invitations/"

	t.Run("cancelled", func(t *testing.T) {
		router, svc := newInvitationRouter(t, user, team)
		svc.EXPECT().DeleteTeamInvitation(gomock.Any(), team, invitationID, user).Return(nil)

		w := serve(router, http.MethodDelete, path+invitationID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		router, svc := newInvitationRouter(t, user, team)
		svc.EXPECT().DeleteTeamInvitation(gomock.Any(), team, invitationID, user).Return(apperrors.ErrForbidden)

		w := serve(router, http.MethodDelete, path+invitationID.Hex(), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		router, _ := newInvitationRouter(t, user, team)

		w := serve(router, http.MethodDelete, path+"xyz", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeamInvitationHandler_ShowInvitation(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme"}
	path := "/teams/" + team.ID.Hex() + "/invitations/" + invitationUUID + "/accept"

	t.Run("guest sees invitation", func(t *testing.T) {
		router, svc := newInvitationRouter(t, nil, team)
		svc.EXPECT().ShowInvitation(gomock.Any(), team, invitationUUID, (*models.User)(nil)).
			Return(&models.InvitationDetailsResponse{RoleName: "member", UserExists: false}, nil)

		w := serve(router, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "member", decode(t, w).Data["roleName"])
	})

	t.Run("signed-in stranger", func(t *testing.T) {
		viewer := &models.User{ID: primitive.NewObjectID(), Email: "other@example.com"}
		router, svc := newInvitationRouter(t, viewer, team)
		svc.EXPECT().ShowInvitation(gomock.Any(), team, invitationUUID, viewer).Return(nil, apperrors.ErrInvitationEmailMismatch)

		w := serve(router, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You are not allowed to accept this invitation.", decode(t, w).Error)
	})
}

func TestTeamInvitationHandler_Accept(t *testing.T) {
	team := &models.Team{ID: primitive.NewObjectID(), Name: "Acme"}
	base := "/teams/" + team.ID.Hex() + "/invitations/" + invitationUUID + "/accept"

	t.Run("signed-in user joins", func(t *testing.T) {
		user := &models.User{ID: primitive.NewObjectID(), Email: "new@example.com"}
		router, svc := newInvitationRouter(t, user, team)
		svc.EXPECT().AcceptInvitation(gomock.Any(), team, invitationUUID, user).
			Return(&models.AcceptInvitationResponse{Message: "You have been added to Acme", TeamID: team.ID.Hex()}, nil)

		w := serve(router, http.MethodPut, base+"/auth", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, team.ID.Hex(), decode(t, w).Data["teamId"])
	})

	t.Run("accept requires a user", func(t *testing.T) {
		router, _ := newInvitationRouter(t, nil, team)

		w := serve(router, http.MethodPut, base+"/auth", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("guest registers and joins", func(t *testing.T) {
		router, svc := newInvitationRouter(t, nil, team)
		req := models.RegisterRequest{Name: "New User", Email: "new@example.com", Password: "secret123", PasswordConfirmation: "secret123"}
		svc.EXPECT().RegisterAndAccept(gomock.Any(), team, invitationUUID, &req).
			Return(&models.AcceptInvitationResponse{TeamID: team.ID.Hex(), Token: "jwt"}, nil)

		w := serve(router, http.MethodPost, base, jsonBody(t, req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "jwt", decode(t, w).Data["token"])
	})

	t.Run("guest registration with existing email", func(t *testing.T) {
		router, svc := newInvitationRouter(t, nil, team)
		svc.EXPECT().RegisterAndAccept(gomock.Any(), team, invitationUUID, gomock.Any()).Return(nil, apperrors.ErrUserAlreadyExists)

		w := serve(router, http.MethodPost, base, jsonBody(t, models.RegisterRequest{
			Name: "New User", Email: "new@example.com", Password: "secret123", PasswordConfirmation: "secret123",
		}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
