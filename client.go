package fraudclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/frauddash/go-fraudclient/cache"
	"github.com/frauddash/go-fraudclient/core"
	"github.com/frauddash/go-fraudclient/credential"
	"github.com/frauddash/go-fraudclient/ratelimit"
	"github.com/frauddash/go-fraudclient/session"
	"github.com/frauddash/go-fraudclient/transport"
)

type clientBuilder struct {
	runtimeConfig  core.Config
	logger         core.Logger
	loggerProvider core.LoggerProvider
	httpClient     transport.HTTPDoer
	transport      core.TransportAdapter
	credentials    core.CredentialStore
	cache          core.Cache
	broadcaster    *session.ExpiryBroadcaster
	configProvider core.ConfigProvider
	resolver       core.OptionsResolver
}

type Option func(*clientBuilder)

func WithLogger(logger core.Logger) Option {
	return func(b *clientBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *clientBuilder) {
		b.loggerProvider = provider
	}
}

// WithHTTPClient swaps the underlying http client of the default REST
// transport, eg to add proxies or a custom timeout.
func WithHTTPClient(httpClient transport.HTTPDoer) Option {
	return func(b *clientBuilder) {
		b.httpClient = httpClient
	}
}

// WithTransport replaces the whole transport core; tests substitute a
// scripted fake here.
func WithTransport(adapter core.TransportAdapter) Option {
	return func(b *clientBuilder) {
		b.transport = adapter
	}
}

func WithCredentialStore(store core.CredentialStore) Option {
	return func(b *clientBuilder) {
		b.credentials = store
	}
}

func WithCache(ttlCache core.Cache) Option {
	return func(b *clientBuilder) {
		b.cache = ttlCache
	}
}

func WithBroadcaster(broadcaster *session.ExpiryBroadcaster) Option {
	return func(b *clientBuilder) {
		b.broadcaster = broadcaster
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *clientBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *clientBuilder) {
		b.resolver = resolver
	}
}

// Client is the runtime every dashboard collaborator talks through. It owns
// the TTL cache, the credential slot reference, the session-expiry
// broadcaster, and the transport; the resource services hanging off it are
// thin verb+path bindings.
type Client struct {
	config      core.Config
	transport   core.TransportAdapter
	cache       core.Cache
	credentials core.CredentialStore
	broadcaster *session.ExpiryBroadcaster
	guard       *transport.AuthGuard
	logger      core.Logger

	mu            sync.Mutex
	lastRateLimit ratelimit.Snapshot

	auth        *AuthService
	predictions *PredictionService
	analytics   *AnalyticsService
	admin       *AdminService
	teams       *TeamService
	alerts      *AlertService
	reports     *ReportService
	webhooks    *WebhookService
	network     *FraudNetworkService
	health      *HealthService
	apiKeys     *APIKeyService
	explainer   *ExplainerService
	forecast    *ForecastService
	feedback    *FeedbackService
	simulation  *SimulationService
	geoVelocity *GeoVelocityService
	fingerprint *DeviceFingerprintService
}

// New builds the runtime. Configuration resolves defaults < environment <
// the cfg argument; every collaborator (transport, cache, credential store,
// broadcaster) is injectable and defaults to the in-process implementation.
func New(cfg core.Config, options ...Option) (*Client, error) {
	builder := clientBuilder{runtimeConfig: cfg}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&builder)
	}

	provider, logger := glog.Resolve("fraudclient", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("fraudclient"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	configProvider := builder.configProvider
	if configProvider == nil {
		configProvider = core.NewCfgxConfigProvider(nil)
	}
	resolver := builder.resolver
	if resolver == nil {
		resolver = core.GoOptionsResolver{}
	}
	loaded, err := configProvider.Load(context.Background(), core.DefaultConfig())
	if err != nil {
		return nil, err
	}
	resolved, err := resolver.Resolve(core.DefaultConfig(), loaded, builder.runtimeConfig)
	if err != nil {
		return nil, err
	}

	credentials := builder.credentials
	if credentials == nil {
		credentials = credential.NewMemoryStore()
	}
	ttlCache := builder.cache
	if ttlCache == nil {
		ttlCache = cache.New()
	}
	broadcaster := builder.broadcaster
	if broadcaster == nil {
		broadcaster = session.NewExpiryBroadcaster()
	}

	adapter := builder.transport
	if adapter == nil {
		adapter = transport.New(transport.Config{
			BaseURL:     resolved.BaseURL,
			UserAgent:   resolved.UserAgent,
			HTTPClient:  builder.httpClient,
			Credentials: credentials,
			Logger:      logger,
		})
	}

	client := &Client{
		config:      resolved,
		transport:   adapter,
		cache:       ttlCache,
		credentials: credentials,
		broadcaster: broadcaster,
		guard:       transport.NewAuthGuard(credentials, ttlCache, broadcaster, logger),
		logger:      logger,
	}
	client.auth = &AuthService{client: client}
	client.predictions = &PredictionService{client: client}
	client.analytics = &AnalyticsService{client: client}
	client.admin = &AdminService{client: client}
	client.teams = &TeamService{client: client}
	client.alerts = &AlertService{client: client}
	client.reports = &ReportService{client: client}
	client.webhooks = &WebhookService{client: client}
	client.network = &FraudNetworkService{client: client}
	client.health = &HealthService{client: client}
	client.apiKeys = &APIKeyService{client: client}
	client.explainer = &ExplainerService{client: client}
	client.forecast = &ForecastService{client: client}
	client.feedback = &FeedbackService{client: client}
	client.simulation = &SimulationService{client: client}
	client.geoVelocity = &GeoVelocityService{client: client}
	client.fingerprint = &DeviceFingerprintService{client: client}
	return client, nil
}

func (c *Client) Auth() *AuthService                     { return c.auth }
func (c *Client) Predictions() *PredictionService        { return c.predictions }
func (c *Client) Analytics() *AnalyticsService           { return c.analytics }
func (c *Client) Admin() *AdminService                   { return c.admin }
func (c *Client) Teams() *TeamService                    { return c.teams }
func (c *Client) Alerts() *AlertService                  { return c.alerts }
func (c *Client) Reports() *ReportService                { return c.reports }
func (c *Client) Webhooks() *WebhookService              { return c.webhooks }
func (c *Client) FraudNetwork() *FraudNetworkService     { return c.network }
func (c *Client) Health() *HealthService                 { return c.health }
func (c *Client) APIKeys() *APIKeyService                { return c.apiKeys }
func (c *Client) Explainer() *ExplainerService           { return c.explainer }
func (c *Client) Forecast() *ForecastService             { return c.forecast }
func (c *Client) Feedback() *FeedbackService             { return c.feedback }
func (c *Client) Simulation() *SimulationService         { return c.simulation }
func (c *Client) GeoVelocity() *GeoVelocityService       { return c.geoVelocity }
func (c *Client) Fingerprint() *DeviceFingerprintService { return c.fingerprint }

// Config returns the resolved configuration.
func (c *Client) Config() core.Config {
	return c.config
}

// OnSessionExpired subscribes to the forced-logout signal. The returned
// channel receives at most one pending signal; unsubscribe with the id.
func (c *Client) OnSessionExpired() (int, <-chan struct{}) {
	return c.broadcaster.Subscribe()
}

func (c *Client) RemoveSessionListener(id int) {
	c.broadcaster.Unsubscribe(id)
}

// LastRateLimit reports the telemetry snapshot of the most recent response.
func (c *Client) LastRateLimit() ratelimit.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastRateLimit == (ratelimit.Snapshot{}) {
		return ratelimit.DefaultSnapshot()
	}
	return c.lastRateLimit
}

// do runs one operation through the full interceptor chain: dispatch,
// rate-limit capture, status classification, and the 401 auth guard. The
// guard path clears global state first and still re-raises the original
// error unchanged.
func (c *Client) do(ctx context.Context, req core.TransportRequest, out any) error {
	res, err := c.exchange(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(res.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return core.InternalError("fraudclient: decode response body", map[string]any{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})
	}
	return nil
}

// doRaw is the binary/blob variant used by downloadable reports; the caller
// receives the raw body and headers.
func (c *Client) doRaw(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	req.Binary = true
	return c.exchange(ctx, req)
}

func (c *Client) exchange(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := c.transport.Do(ctx, req)
	if err != nil {
		return core.TransportResponse{}, err
	}
	c.recordRateLimit(res.Headers)

	if res.StatusCode >= 400 {
		responseErr := core.ResponseError(res.StatusCode, res.Body, map[string]any{
			"method": strings.ToUpper(strings.TrimSpace(req.Method)),
			"path":   req.Path,
		})
		if res.StatusCode == http.StatusUnauthorized {
			c.guard.HandleUnauthorized(ctx)
		}
		return res, responseErr
	}
	return res, nil
}

func (c *Client) recordRateLimit(headers map[string]string) {
	snapshot := ratelimit.FromHeaders(headers)
	c.mu.Lock()
	c.lastRateLimit = snapshot
	c.mu.Unlock()
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, core.TransportRequest{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, core.TransportRequest{Method: http.MethodPost, Path: path, Body: encoded}, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, core.TransportRequest{Method: http.MethodPatch, Path: path, Body: encoded}, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, core.TransportRequest{Method: http.MethodDelete, Path: path}, out)
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, core.BadInputError("fraudclient: encode request body", map[string]any{"error": err.Error()})
	}
	return encoded, nil
}

// query builds a parameter map, dropping empty values so they never reach
// the wire.
func query(pairs ...string) map[string]string {
	params := map[string]string{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := strings.TrimSpace(pairs[i])
		value := strings.TrimSpace(pairs[i+1])
		if key == "" || value == "" {
			continue
		}
		params[key] = value
	}
	return params
}
