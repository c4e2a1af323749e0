package server

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	authdomain "github.com/districtclose/districtclose/internal/auth/domain"
	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	invitedomain "github.com/districtclose/districtclose/internal/invite/domain"
	milestonedomain "github.com/districtclose/districtclose/internal/milestone/domain"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
	"github.com/districtclose/districtclose/pkg/db/pagination"
)

type fakeAuthService struct {
	signUpResult *authdomain.LoginResult
	signUpErr    error
	loginResult  *authdomain.LoginResult
	loginErr     error
	logoutCalls  int
	user         *authdomain.User
	authErr      error
}

func (f *fakeAuthService) SignUp(ctx context.Context, req authdomain.SignUpRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	_ = req
	return f.signUpResult, f.signUpErr
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	_ = ctx
	_ = req
	return f.loginResult, f.loginErr
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	_ = ctx
	_ = rawToken
	f.logoutCalls++
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.User, error) {
	_ = ctx
	_ = rawToken
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.user, nil
}

type fakeTxService struct {
	tx         *txdomain.Transaction
	role       txdomain.Role
	err        error
	preview    *txdomain.InvitePreview
	joinCalls  int
	closeCalls int
}

func (f *fakeTxService) Create(ctx context.Context, creatorID snowflake.ID, params txdomain.CreateParams) (*txdomain.Transaction, error) {
	_ = ctx
	_ = creatorID
	_ = params
	return f.tx, f.err
}

func (f *fakeTxService) GetForViewer(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*txdomain.Transaction, txdomain.Role, error) {
	_ = ctx
	_ = id
	_ = userID
	return f.tx, f.role, f.err
}

func (f *fakeTxService) ListByUser(ctx context.Context, userID snowflake.ID, p pagination.Pagination) ([]txdomain.Transaction, *pagination.PageInfo, error) {
	_ = ctx
	_ = userID
	_ = p
	if f.err != nil {
		return nil, nil, f.err
	}
	if f.tx == nil {
		return nil, &pagination.PageInfo{}, nil
	}
	return []txdomain.Transaction{*f.tx}, &pagination.PageInfo{}, nil
}

func (f *fakeTxService) Update(ctx context.Context, id snowflake.ID, userID snowflake.ID, params txdomain.UpdateParams) (*txdomain.Transaction, error) {
	_ = ctx
	_ = id
	_ = userID
	_ = params
	return f.tx, f.err
}

func (f *fakeTxService) Close(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*txdomain.Transaction, error) {
	_ = ctx
	_ = id
	_ = userID
	f.closeCalls++
	return f.tx, f.err
}

func (f *fakeTxService) ResolveInvite(ctx context.Context, token string, userID snowflake.ID) (*txdomain.InvitePreview, error) {
	_ = ctx
	_ = token
	_ = userID
	return f.preview, f.err
}

func (f *fakeTxService) Join(ctx context.Context, token string, userID snowflake.ID) (*txdomain.Transaction, error) {
	_ = ctx
	_ = token
	_ = userID
	f.joinCalls++
	return f.tx, f.err
}

type fakeMilestoneService struct {
	milestones []milestonedomain.Milestone
	updated    *milestonedomain.Milestone
	err        error
}

func (f *fakeMilestoneService) SeedForTransaction(ctx context.Context, transactionID snowflake.ID, start time.Time, tenanted bool) ([]milestonedomain.Milestone, error) {
	_ = ctx
	_ = transactionID
	_ = start
	_ = tenanted
	return f.milestones, f.err
}

func (f *fakeMilestoneService) ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]milestonedomain.Milestone, error) {
	_ = ctx
	_ = transactionID
	_ = role
	return f.milestones, f.err
}

func (f *fakeMilestoneService) UpdateStatus(ctx context.Context, id snowflake.ID, status milestonedomain.Status) (*milestonedomain.Milestone, error) {
	_ = ctx
	_ = id
	_ = status
	return f.updated, f.err
}

func (f *fakeMilestoneService) ProgressForViewer(ctx context.Context, transactionID snowflake.ID, role string) (milestonedomain.Progress, error) {
	_ = ctx
	_ = transactionID
	_ = role
	return milestonedomain.Progress{Complete: 3, Total: 12, Percent: 25}, f.err
}

type fakeDocumentService struct {
	docs []documentdomain.Document
	doc  *documentdomain.Document
	err  error
}

func (f *fakeDocumentService) SeedForTransaction(ctx context.Context, transactionID snowflake.ID, tenanted bool) ([]documentdomain.Document, error) {
	_ = ctx
	_ = transactionID
	_ = tenanted
	return f.docs, f.err
}

func (f *fakeDocumentService) ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]documentdomain.Document, error) {
	_ = ctx
	_ = transactionID
	_ = role
	return f.docs, f.err
}

func (f *fakeDocumentService) Link(ctx context.Context, id snowflake.ID, url string, uploadedBy snowflake.ID) (*documentdomain.Document, error) {
	_ = ctx
	_ = id
	_ = url
	_ = uploadedBy
	return f.doc, f.err
}

func (f *fakeDocumentService) Unlink(ctx context.Context, id snowflake.ID) (*documentdomain.Document, error) {
	_ = ctx
	_ = id
	return f.doc, f.err
}

func (f *fakeDocumentService) SetStatus(ctx context.Context, id snowflake.ID, status documentdomain.Status) (*documentdomain.Document, error) {
	_ = ctx
	_ = id
	_ = status
	return f.doc, f.err
}

type fakeInviteService struct {
	inv           *invitedomain.Invitation
	err           error
	acceptedToken string
}

func (f *fakeInviteService) Send(ctx context.Context, transactionID snowflake.ID, email, token, propertyAddress string) (*invitedomain.Invitation, error) {
	_ = ctx
	_ = transactionID
	_ = email
	_ = token
	_ = propertyAddress
	return f.inv, f.err
}

func (f *fakeInviteService) ListByTransaction(ctx context.Context, transactionID snowflake.ID) ([]invitedomain.Invitation, error) {
	_ = ctx
	_ = transactionID
	if f.inv == nil {
		return nil, f.err
	}
	return []invitedomain.Invitation{*f.inv}, f.err
}

func (f *fakeInviteService) MarkAccepted(ctx context.Context, token string) error {
	_ = ctx
	f.acceptedToken = token
	return nil
}

// asUser injects the authenticated user id the way AuthRequired would.
func asUser(id snowflake.ID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextUserIDKey, id)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	return r
}
