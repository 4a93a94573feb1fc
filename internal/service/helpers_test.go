package service

import (
	"context"
	"sync"
	"testing"

	authzmocks "teamhub/internal/authz/mocks"
	cachemocks "teamhub/internal/cache/mocks"
	repomocks "teamhub/internal/repository/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// passthroughTx runs fn directly and counts transactions.
type passthroughTx struct {
	calls int
}

func (t *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type recordedEvents struct {
	mu   sync.Mutex
	team []string
	auth []string
}

func (r *recordedEvents) RecordTeamEvent(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.team = append(r.team, event)
}

func (r *recordedEvents) RecordAuthEvent(event, provider string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auth = append(r.auth, event+":"+provider)
}

type teamMocks struct {
	ctrl        *gomock.Controller
	tx          *passthroughTx
	teams       *repomocks.MockTeamRepository
	roles       *repomocks.MockRoleRepository
	permissions *repomocks.MockPermissionRepository
	members     *repomocks.MockTeamMemberRepository
	invitations *repomocks.MockTeamInvitationRepository
	users       *repomocks.MockUserRepository
	authorizer  *authzmocks.MockAuthorizer
	cache       *cachemocks.MockCache
	events      *recordedEvents
}

func newTeamMocks(t *testing.T) *teamMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &teamMocks{
		ctrl:        ctrl,
		tx:          &passthroughTx{},
		teams:       repomocks.NewMockTeamRepository(ctrl),
		roles:       repomocks.NewMockRoleRepository(ctrl),
		permissions: repomocks.NewMockPermissionRepository(ctrl),
		members:     repomocks.NewMockTeamMemberRepository(ctrl),
		invitations: repomocks.NewMockTeamInvitationRepository(ctrl),
		users:       repomocks.NewMockUserRepository(ctrl),
		authorizer:  authzmocks.NewMockAuthorizer(ctrl),
		cache:       cachemocks.NewMockCache(ctrl),
		events:      &recordedEvents{},
	}
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return m
}

func (m *teamMocks) repos() TeamRepositories {
	return TeamRepositories{
		Teams:       m.teams,
		Roles:       m.roles,
		Permissions: m.permissions,
		Members:     m.members,
		Invitations: m.invitations,
		Users:       m.users,
	}
}

func (m *teamMocks) teamService() *TeamService {
	return NewTeamService(m.tx, m.repos(), m.authorizer, m.cache, m.events, zap.NewNop())
}

func (m *teamMocks) memberService() *TeamMemberService {
	return NewTeamMemberService(m.tx, m.repos(), m.authorizer, m.cache, m.events, zap.NewNop())
}
