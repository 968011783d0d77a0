package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stocksight/stocksight-backend/internal/audit"
	pkgAuth "github.com/stocksight/stocksight-backend/pkg/auth"
	"github.com/stocksight/stocksight-backend/pkg/config"
	"github.com/stocksight/stocksight-backend/pkg/db/models"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/security"
)

var testJWTCfg = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "stocksight",
	ExpirationMinutes: 30,
}

var testPasswordCfg = config.PasswordConfig{
	ArgonMemoryKB:    32768,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

type fakeUserRepo struct {
	byEmail   map[string]*models.User
	byID      map[uuid.UUID]*models.User
	lastLogin map[uuid.UUID]time.Time
}

func newFakeUserRepo(usersIn ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byEmail:   map[string]*models.User{},
		byID:      map[uuid.UUID]*models.User{},
		lastLogin: map[uuid.UUID]time.Time{},
	}
	for _, u := range usersIn {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.lastLogin[id] = at
	return nil
}

type fakeSessionManager struct {
	generated []string
	revoked   []string
}

func (f *fakeSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	f.generated = append(f.generated, accessID)
	return "refresh-" + accessID, nil
}

func (f *fakeSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "new-" + oldAccessID, "refresh-new-" + oldAccessID, nil
}

func (f *fakeSessionManager) Revoke(ctx context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

type fakeRecorder struct {
	entries []audit.Entry
}

func (f *fakeRecorder) Record(ctx context.Context, tx *gorm.DB, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func mustTestUser(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordCfg)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		PasswordHash: hash,
		Name:         "Ops User",
		Role:         enums.UserRoleManager,
		IsActive:     active,
	}
}

func newTestService(t *testing.T, repo *fakeUserRepo, sessions *fakeSessionManager, recorder *fakeRecorder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		Auditor:        recorder,
		JWTConfig:      testJWTCfg,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccess(t *testing.T) {
	user := mustTestUser(t, "hunter2-strong", true)
	repo := newFakeUserRepo(user)
	sessions := &fakeSessionManager{}
	recorder := &fakeRecorder{}
	svc := newTestService(t, repo, sessions, recorder)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Ops@Example.com ",
		Password: "hunter2-strong",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTCfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != enums.UserRoleManager {
		t.Fatalf("unexpected role %s", claims.Role)
	}

	if len(sessions.generated) != 1 {
		t.Fatalf("expected one session generated, got %d", len(sessions.generated))
	}
	if resp.RefreshToken == "" {
		t.Fatal("expected refresh token")
	}
	if _, ok := repo.lastLogin[user.ID]; !ok {
		t.Fatal("expected last login to be stamped")
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(recorder.entries))
	}
	entry := recorder.entries[0]
	if entry.Action != enums.AuditActionLogin || entry.EntityType != enums.EntityTypeUser {
		t.Fatalf("unexpected audit entry %+v", entry)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := mustTestUser(t, "correct-password", true)
	svc := newTestService(t, newFakeUserRepo(user), &fakeSessionManager{}, &fakeRecorder{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ops@example.com",
		Password: "wrong-password",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t, newFakeUserRepo(), &fakeSessionManager{}, &fakeRecorder{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	user := mustTestUser(t, "hunter2-strong", false)
	svc := newTestService(t, newFakeUserRepo(user), &fakeSessionManager{}, &fakeRecorder{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ops@example.com",
		Password: "hunter2-strong",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogoutRevokesAndRecords(t *testing.T) {
	sessions := &fakeSessionManager{}
	recorder := &fakeRecorder{}
	svc := newTestService(t, newFakeUserRepo(), sessions, recorder)

	userID := uuid.New()
	if err := svc.Logout(context.Background(), userID, "access-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "access-1" {
		t.Fatalf("expected session revoked, got %v", sessions.revoked)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != enums.AuditActionLogout {
		t.Fatalf("expected logout audit entry, got %+v", recorder.entries)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	user := mustTestUser(t, "hunter2-strong", true)
	repo := newFakeUserRepo(user)
	svc := newTestService(t, repo, &fakeSessionManager{}, &fakeRecorder{})

	// Token expired an hour ago; refresh must still accept it.
	expired, err := pkgAuth.MintAccessToken(testJWTCfg, time.Now().Add(-2*time.Hour), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    "old-access",
	})
	if err != nil {
		t.Fatalf("mint expired token: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  expired,
		RefreshToken: "refresh-old-access",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTCfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if claims.ID != "new-old-access" {
		t.Fatalf("expected rotated jti, got %s", claims.ID)
	}
	if resp.RefreshToken != "refresh-new-old-access" {
		t.Fatalf("unexpected refresh token %s", resp.RefreshToken)
	}
}
