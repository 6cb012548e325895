package repository

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

// BackendClient is the part of apiclient.Client the repositories use.
type BackendClient interface {
	Do(ctx context.Context, req apiclient.Request) (*apiclient.Result, error)
	Fetch(ctx context.Context, req apiclient.Request) (*apiclient.RawResponse, error)
}

// send performs req and maps failures onto typed errors: transport faults
// become ErrBackendUnavailable, envelopes with success=false keep the
// backend status and message.
func send(ctx context.Context, client BackendClient, req apiclient.Request) (*apiclient.Result, error) {
	res, err := client.Do(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrBackendUnavailable.Code, appErrors.ErrBackendUnavailable.Status, appErrors.ErrBackendUnavailable.Message)
	}
	if !res.Success {
		return res, appErrors.Backend(res.StatusCode, res.Message)
	}
	return res, nil
}

// fetch decodes the data member of a successful call into T.
func fetch[T any](ctx context.Context, client BackendClient, req apiclient.Request) (T, error) {
	var zero T
	res, err := send(ctx, client, req)
	if err != nil {
		return zero, err
	}
	out, err := apiclient.Decode[T](res)
	if err != nil {
		if errors.Is(err, apiclient.ErrEmptyData) {
			return zero, nil
		}
		return zero, appErrors.Wrap(err, appErrors.ErrBackendUnavailable.Code, appErrors.ErrBackendUnavailable.Status, "unexpected backend response")
	}
	return out, nil
}

// download relays a binary backend response, mapping error statuses.
func download(ctx context.Context, client BackendClient, req apiclient.Request) (*apiclient.RawResponse, error) {
	raw, err := client.Fetch(ctx, req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrBackendUnavailable.Code, appErrors.ErrBackendUnavailable.Status, appErrors.ErrBackendUnavailable.Message)
	}
	if raw.StatusCode >= http.StatusBadRequest {
		res := apiclient.Normalize(raw.StatusCode, raw.Body)
		return nil, appErrors.Backend(raw.StatusCode, res.Message)
	}
	return raw, nil
}

type query url.Values

func newQuery() query { return query(url.Values{}) }

func (q query) str(key, value string) query {
	if value != "" {
		url.Values(q).Set(key, value)
	}
	return q
}

func (q query) num(key string, value int) query {
	if value > 0 {
		url.Values(q).Set(key, strconv.Itoa(value))
	}
	return q
}

func (q query) flag(key string, value *bool) query {
	if value != nil {
		url.Values(q).Set(key, strconv.FormatBool(*value))
	}
	return q
}

func (q query) values() url.Values { return url.Values(q) }

func itoa(id int) string { return strconv.Itoa(id) }
