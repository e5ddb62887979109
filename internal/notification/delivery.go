package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/usecase/outbox"
	"github.com/project/bookcrossing/internal/usecase/repository"
)

const (
	dialerTimeoutSeconds                  = 30
	dialerKeepAliveSeconds                = 180
	transportMaxIdleConns                 = 100
	transportMaxConnsPerHost              = 100
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

const contentType = "application/json"

var (
	ErrFailRequest     = errors.New("not 2xx response")
	ErrUnsupportedKind = errors.New("unsupported outbox kind")
)

const statusOk = 2

func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	return &http.Client{Transport: transport}
}

// GlobalHandler routes outbox kinds to the mail service endpoints.
func GlobalHandler(client *http.Client, cfg config.Outbox) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindWishAvailable:
			return wishAvailableHandler(client, cfg.WishSendURL), nil
		case repository.OutboxKindRequestMade, repository.OutboxKindRequestApproved:
			return requestEventHandler(client, cfg.RequestSendURL, kind), nil
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, kind)
		}
	}
}

func wishAvailableHandler(client *http.Client, url string) outbox.KindHandler {
	return func(ctx context.Context, data []byte) error {
		notification := entity.WishAvailableNotification{}
		if err := json.Unmarshal(data, &notification); err != nil {
			return fmt.Errorf("can not deserialize data in wish outbox handler: %w", err)
		}

		return post(ctx, client, url, "", notification)
	}
}

func requestEventHandler(client *http.Client, url string, kind repository.OutboxKind) outbox.KindHandler {
	return func(ctx context.Context, data []byte) error {
		event := entity.RequestEvent{}
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("can not deserialize data in request outbox handler: %w", err)
		}

		return post(ctx, client, url, kind.String(), event)
	}
}

// EventHeader names the event kind for endpoints shared by several kinds.
const EventHeader = "X-Event-Kind"

func post(ctx context.Context, client *http.Client, url, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can not serialize payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("can not build post request: %w", err)
	}
	request.Header.Set("Content-Type", contentType)
	if event != "" {
		request.Header.Set(EventHeader, event)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("can not make post request to given url: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode/100 != statusOk {
		return fmt.Errorf("%w: %d", ErrFailRequest, response.StatusCode)
	}

	return nil
}
