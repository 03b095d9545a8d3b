package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/celsinho/rental-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

const DefaultIBGEBaseURL = "https://servicodados.ibge.gov.br/api/v1"

// Provider is the two-level geography hierarchy the cache flattens:
// regions first, then localities per region. Read-only.
type Provider interface {
	States(ctx context.Context) ([]State, error)
	Municipalities(ctx context.Context, stateCode string) ([]Municipality, error)
}

type State struct {
	Id   int    `json:"id"`
	Code string `json:"sigla"`
	Name string `json:"nome"`
}

type Municipality struct {
	Id   int    `json:"id"`
	Name string `json:"nome"`
}

type ibgeClient struct {
	baseURL       string
	timeout       time.Duration
	httpTransport http.RoundTripper
	logger        *zerolog.Logger
}

// NewIBGEClient talks to the IBGE localities API. An empty baseURL means
// the public endpoint.
func NewIBGEClient(baseURL string, logger *zerolog.Logger) Provider {
	if baseURL == "" {
		baseURL = DefaultIBGEBaseURL
	}

	return &ibgeClient{
		baseURL:       baseURL,
		timeout:       10 * time.Second,
		httpTransport: http.DefaultTransport,
		logger:        logger,
	}
}

func (c *ibgeClient) client() *http.Client {
	return &http.Client{
		Timeout: c.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(c.logger),
			},
		},
	}
}

func (c *ibgeClient) fetch(ctx context.Context, url string, destination any) error {
	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)

	response, requestErr := requesting.RequestErrors(c.client().Do(httpRequest))
	if requestErr != nil {
		return errors.New(requestErr.Message)
	}
	defer response.Body.Close()

	bodyBytes, _ := io.ReadAll(response.Body)

	return json.Unmarshal(bodyBytes, destination)
}

func (c *ibgeClient) States(ctx context.Context) ([]State, error) {
	var states []State
	url := fmt.Sprintf("%s/localidades/estados?orderBy=nome", c.baseURL)

	err := c.fetch(ctx, url, &states)
	if err != nil {
		return nil, err
	}

	return states, nil
}

func (c *ibgeClient) Municipalities(ctx context.Context, stateCode string) ([]Municipality, error) {
	var municipalities []Municipality
	url := fmt.Sprintf("%s/localidades/estados/%s/municipios", c.baseURL, stateCode)

	err := c.fetch(ctx, url, &municipalities)
	if err != nil {
		return nil, err
	}

	return municipalities, nil
}
