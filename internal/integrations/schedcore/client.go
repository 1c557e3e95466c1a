package schedcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// Client talks to the remote scheduling backend that owns the catalog,
// availability and appointment data.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a scheduling backend client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// BusinessBySlug fetches the business profile by its public slug.
func (c *Client) BusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	var model Business
	endpoint := fmt.Sprintf("/api/business/slug/%s/", url.PathEscape(slug))
	if err := c.get(ctx, endpoint, &model); err != nil {
		return nil, err
	}

	business, err := model.ToDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Fetched business slug=%s id=%s", slug, business.ID)
	return business, nil
}

// ServicesByBusiness fetches the service catalog of a business.
func (c *Client) ServicesByBusiness(ctx context.Context, businessID string) ([]domain.Service, error) {
	var models []Service
	endpoint := fmt.Sprintf("/api/services/?business_id=%s", url.QueryEscape(businessID))
	if err := c.get(ctx, endpoint, &models); err != nil {
		return nil, err
	}

	services := make([]domain.Service, 0, len(models))
	for i := range models {
		services = append(services, models[i].ToDomain())
	}

	c.log.Info("Fetched %d services for business=%s", len(services), businessID)
	return services, nil
}

// DaySlots fetches the backend's availability for one date and maps it onto
// domain slots (unavailable entries kept, flagged). The service duration is
// the backend's concern here and is ignored.
func (c *Client) DaySlots(ctx context.Context, business *domain.Business, serviceID string, _ int, date time.Time) ([]domain.TimeSlot, error) {
	var day AvailabilityDay
	endpoint := fmt.Sprintf("/api/availability/slots?business_id=%s&service_id=%s&date=%s",
		url.QueryEscape(business.ID), url.QueryEscape(serviceID), date.Format(domain.DateFormat))
	if err := c.get(ctx, endpoint, &day); err != nil {
		return nil, err
	}

	slots := day.ToDomainSlots(business.Location())
	c.log.Info("Fetched %d slots for business=%s service=%s date=%s",
		len(slots), business.ID, serviceID, date.Format(domain.DateFormat))
	return slots, nil
}

// SearchCustomers looks up customers of a business by exact email.
// An empty result is not an error.
func (c *Client) SearchCustomers(ctx context.Context, businessID, email string) ([]domain.Customer, error) {
	var models []Customer
	endpoint := fmt.Sprintf("/api/customers/search?business_id=%s&email=%s",
		url.QueryEscape(businessID), url.QueryEscape(email))
	if err := c.get(ctx, endpoint, &models); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, models[i].ToDomain())
	}

	return customers, nil
}

// CreateCustomer creates a customer record.
func (c *Client) CreateCustomer(ctx context.Context, req CustomerCreateRequest) (*domain.Customer, error) {
	var model Customer
	if err := c.post(ctx, "/api/customers/", req, &model); err != nil {
		return nil, err
	}

	customer := model.ToDomain()
	c.log.Info("Created customer id=%s for business=%s", customer.ID, customer.BusinessID)
	return &customer, nil
}

// CreateAppointment creates an appointment for an existing customer.
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentCreateRequest, loc *time.Location) (*domain.Appointment, error) {
	var model Appointment
	if err := c.post(ctx, "/api/appointments/", req, &model); err != nil {
		return nil, err
	}

	appointment, err := model.ToDomain(loc)
	if err != nil {
		return nil, err
	}

	c.log.Info("Created appointment id=%s for business=%s", appointment.ID, appointment.BusinessID)
	return appointment, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Continue processing
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, readBackendError(resp.Body))
	case http.StatusNotFound:
		return ErrBusinessNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// The backend wraps payloads in {success, data, error}; plain payloads
	// are accepted too.
	var wrapper struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Data) > 0 {
		if !wrapper.Success && wrapper.Error != "" {
			return fmt.Errorf("%w: %s", ErrRejected, wrapper.Error)
		}
		raw = wrapper.Data
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func readBackendError(r io.Reader) string {
	var wrapper envelope
	if err := json.NewDecoder(r).Decode(&wrapper); err == nil {
		if wrapper.Error != "" {
			return wrapper.Error
		}
		if wrapper.Message != "" {
			return wrapper.Message
		}
	}
	return "request rejected by backend"
}
