package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apihttp "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUseCase[In any, Out any] struct{ mock.Mock }

func (m *MockUseCase[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(Out)
	return out, args.Error(1)
}

type testAPI struct {
	echo     *echo.Echo
	resolve  *MockUseCase[queries.ResolvePrincipalQuery, identity.Principal]
	login    *MockUseCase[commands.LoginCommand, commands.LoginResult]
	create   *MockUseCase[commands.CreateShipmentCommand, *shipment.Shipment]
	track    *MockUseCase[queries.TrackShipmentQuery, queries.TrackShipmentQueryResponse]
	overdue  *MockUseCase[queries.ListOverduePaymentsQuery, []queries.ListOverduePaymentsQueryResponse]
	shipment *MockUseCase[queries.GetShipmentQuery, *shipment.Shipment]
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	api := testAPI{
		resolve:  &MockUseCase[queries.ResolvePrincipalQuery, identity.Principal]{},
		login:    &MockUseCase[commands.LoginCommand, commands.LoginResult]{},
		create:   &MockUseCase[commands.CreateShipmentCommand, *shipment.Shipment]{},
		track:    &MockUseCase[queries.TrackShipmentQuery, queries.TrackShipmentQueryResponse]{},
		overdue:  &MockUseCase[queries.ListOverduePaymentsQuery, []queries.ListOverduePaymentsQueryResponse]{},
		shipment: &MockUseCase[queries.GetShipmentQuery, *shipment.Shipment]{},
	}

	server := apihttp.NewServer(apihttp.Handlers{
		Login:               api.login,
		CreateShipment:      api.create,
		TrackShipment:       api.track,
		ListOverduePayments: api.overdue,
		GetShipment:         api.shipment,
		ResolvePrincipal:    api.resolve,
	})
	e, err := apihttp.NewRouter(server, api.resolve, apihttp.RouterConfig{})
	require.NoError(t, err)
	api.echo = e
	return api
}

func (a testAPI) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a testAPI) authenticateAs(token string, p identity.Principal) {
	a.resolve.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ResolvePrincipalQuery) bool {
		return q.Token() == token
	})).Return(p, nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newShipment(t *testing.T, clientID kernel.UUID) *shipment.Shipment {
	t.Helper()
	value, err := kernel.NewMoney(1500, "usd")
	require.NoError(t, err)
	item, err := shipment.NewItem(0, shipment.ItemParams{
		Name: "Box", Quantity: 2, WeightKg: 5, Value: value, Category: shipment.CategoryOther,
	})
	require.NoError(t, err)
	address := func(field string) kernel.Address {
		a, addrErr := kernel.NewAddress(field, kernel.AddressParams{
			Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US",
		})
		require.NoError(t, addrErr)
		return a
	}

	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	s, err := shipment.NewShipment(shipment.CreateParams{
		ClientID:        clientID,
		Items:           []shipment.Item{item},
		PickupAddress:   address("pickupAddress"),
		DeliveryAddress: address("deliveryAddress"),
		PickupDate:      tomorrow,
		DeliveryDate:    tomorrow.Add(72 * time.Hour),
		CreatedBy:       kernel.ClientActor(clientID),
	}, time.Now())
	require.NoError(t, err)
	return s
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSecuredRouteWithoutToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/shipments/"+kernel.NewUUID().String(), "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", decodeError(t, rec).Message)
	api.resolve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	api.shipment.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSecuredRouteWithRevokedToken(t *testing.T) {
	api := newTestAPI(t)
	api.resolve.On("Handle", mock.Anything, mock.Anything).Return(identity.Principal{}, errs.NewUnauthenticatedError())

	rec := api.do(http.MethodGet, "/api/v1/shipments/"+kernel.NewUUID().String(), "stale", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	api.shipment.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin_CredentialFailuresShareOneBody(t *testing.T) {
	api := newTestAPI(t)
	api.login.On("Handle", mock.Anything, mock.Anything).Return(commands.LoginResult{}, errs.NewUnauthenticatedError())

	rec := api.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"principalType":"client","email":"nobody@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeError(t, rec).Message)
}

func TestLogin_LockedAccount(t *testing.T) {
	api := newTestAPI(t)
	api.login.On("Handle", mock.Anything, mock.Anything).
		Return(commands.LoginResult{}, errs.NewAccountLockedError(time.Now().Add(2*time.Hour)))

	rec := api.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"principalType":"admin","email":"ops@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusLocked, rec.Code)
}

func TestLogin_RejectsUnknownPrincipalType(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"principalType":"robot","email":"a@example.com","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	api.login.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateShipment_ClientShipsForItself(t *testing.T) {
	api := newTestAPI(t)
	clientID := kernel.NewUUID()
	api.authenticateAs("client-token", identity.Principal{ID: clientID, Type: identity.PrincipalClient})
	created := newShipment(t, clientID)
	api.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateShipmentCommand) bool {
		return cmd.ClientID() == clientID
	})).Return(created, nil).Once()

	pickup := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	delivery := time.Now().UTC().Add(96 * time.Hour).Format(time.RFC3339)
	body := `{
		"items": [{"name": "Box", "quantity": 2, "weightKg": 5, "value": {"amount": 1500, "currency": "usd"}, "category": "other"}],
		"pickupAddress": {"street": "1 Main St", "city": "Springfield", "state": "IL", "postalCode": "62701", "country": "US"},
		"deliveryAddress": {"street": "9 Elm St", "city": "Shelbyville", "state": "IL", "postalCode": "62565", "country": "US"},
		"pickupDate": "` + pickup + `",
		"deliveryDate": "` + delivery + `"
	}`

	rec := api.do(http.MethodPost, "/api/v1/shipments", "client-token", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got servers.Shipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.TrackingNumber().String(), got.TrackingNumber)
	assert.Equal(t, servers.ShipmentStatus("pending"), got.Status)
	api.create.AssertExpectations(t)
}

func TestCreateShipment_SchemaViolation(t *testing.T) {
	api := newTestAPI(t)
	api.authenticateAs("client-token", identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalClient})

	rec := api.do(http.MethodPost, "/api/v1/shipments", "client-token", `{"items": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	api.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestTrackShipment_IsPublic(t *testing.T) {
	api := newTestAPI(t)
	tn, err := shipment.NewTrackingNumber()
	require.NoError(t, err)
	api.track.On("Handle", mock.Anything, mock.Anything).Return(queries.TrackShipmentQueryResponse{
		TrackingNumber: tn.String(),
		Status:         "in_transit",
		ServiceType:    "standard",
		PickupDate:     time.Now().UTC(),
		DeliveryDate:   time.Now().UTC().Add(48 * time.Hour),
		Timeline:       []queries.TrackingEvent{{Status: "pending", At: time.Now().UTC()}},
	}, nil).Once()

	rec := api.do(http.MethodGet, "/api/v1/track/"+tn.String(), "", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got servers.TrackingSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, tn.String(), got.TrackingNumber)
	assert.Len(t, got.Timeline, 1)
	api.resolve.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestTrackShipment_NotFound(t *testing.T) {
	api := newTestAPI(t)
	tn, err := shipment.NewTrackingNumber()
	require.NoError(t, err)
	api.track.On("Handle", mock.Anything, mock.Anything).
		Return(queries.TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", tn.String()))

	rec := api.do(http.MethodGet, "/api/v1/track/"+tn.String(), "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOverduePayments_ForbiddenForClients(t *testing.T) {
	api := newTestAPI(t)
	api.authenticateAs("client-token", identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalClient})

	rec := api.do(http.MethodGet, "/api/v1/payments/overdue", "client-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	api.overdue.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListOverduePayments_Admin(t *testing.T) {
	api := newTestAPI(t)
	api.authenticateAs("admin-token", identity.Principal{
		ID:          kernel.NewUUID(),
		Type:        identity.PrincipalAdmin,
		AdminRole:   identity.RoleSuperAdmin,
		Permissions: identity.DefaultRolePermissions(identity.RoleSuperAdmin),
		SessionID:   "sess-1",
	})
	api.overdue.On("Handle", mock.Anything, mock.Anything).Return([]queries.ListOverduePaymentsQueryResponse{}, nil).Once()

	rec := api.do(http.MethodGet, "/api/v1/payments/overdue", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[]`, rec.Body.String())
	api.overdue.AssertExpectations(t)
}
