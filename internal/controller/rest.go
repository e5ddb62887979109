package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/bookcrossing/api/lending"
	"github.com/project/bookcrossing/internal/identity"
	"github.com/samber/lo"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	restCall func(ctx context.Context, r *http.Request, params map[string]string) (any, error)

	route struct {
		method  string
		pattern string
		success int
		call    restCall
	}

	fieldViolation struct {
		Field       string `json:"field"`
		Description string `json:"description"`
	}

	errorBody struct {
		Code       string           `json:"code"`
		Message    string           `json:"message"`
		Violations []fieldViolation `json:"violations,omitempty"`
	}
)

// RegisterRoutes exposes srv as JSON over HTTP. The caller id comes from the
// X-User-Id header, the same way the gRPC interceptor reads it from metadata.
func RegisterRoutes(mux *runtime.ServeMux, srv lending.LendingServer) error {
	routes := []route{
		{http.MethodPost, "/api/requests/{book_id}", http.StatusCreated, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			return srv.MakeRequest(ctx, &lending.MakeRequestRequest{BookID: bookID})
		}},
		{http.MethodGet, "/api/requests/{book_id}", http.StatusOK, func(ctx context.Context, r *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			page, size, err := pageQuery(r)
			if err != nil {
				return nil, err
			}
			return srv.GetRequests(ctx, &lending.GetRequestsRequest{BookID: bookID, Page: page, PageSize: size})
		}},
		{http.MethodPut, "/api/requests/{request_id}", http.StatusOK, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			requestID, err := pathID(p, "request_id")
			if err != nil {
				return nil, err
			}
			return srv.ApproveRequest(ctx, &lending.ApproveRequestRequest{RequestID: requestID})
		}},
		{http.MethodDelete, "/api/requests/{request_id}", http.StatusOK, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			requestID, err := pathID(p, "request_id")
			if err != nil {
				return nil, err
			}
			return srv.RemoveRequest(ctx, &lending.RemoveRequestRequest{RequestID: requestID})
		}},
		{http.MethodGet, "/api/wishlist", http.StatusOK, func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			page, size, err := pageQuery(r)
			if err != nil {
				return nil, err
			}
			return srv.GetWishes(ctx, &lending.GetWishesRequest{Page: page, PageSize: size})
		}},
		{http.MethodPost, "/api/wishlist/{book_id}", http.StatusCreated, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			return srv.AddWish(ctx, &lending.WishRequest{BookID: bookID})
		}},
		{http.MethodDelete, "/api/wishlist/{book_id}", http.StatusOK, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			return srv.RemoveWish(ctx, &lending.WishRequest{BookID: bookID})
		}},
		{http.MethodGet, "/api/wishlist/{book_id}", http.StatusOK, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			return srv.CheckWish(ctx, &lending.WishRequest{BookID: bookID})
		}},
		{http.MethodPost, "/api/books/{book_id}/available", http.StatusAccepted, func(ctx context.Context, _ *http.Request, p map[string]string) (any, error) {
			bookID, err := pathID(p, "book_id")
			if err != nil {
				return nil, err
			}
			return srv.NotifyAvailable(ctx, &lending.NotifyAvailableRequest{BookID: bookID})
		}},
	}

	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler()); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (rt route) handler() runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		ctx := r.Context()
		if raw := r.Header.Get(identity.HeaderKey); raw != "" {
			if id, err := identity.Parse(raw); err == nil {
				ctx = identity.WithUserID(ctx, id)
			}
		}

		resp, err := rt.call(ctx, r, params)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, rt.success, resp)
	}
}

func pathID(params map[string]string, name string) (int64, error) {
	id, err := strconv.ParseInt(params[name], 10, 64)
	if err != nil {
		return 0, invalidArgument(validation.Errors{
			name: validation.NewError("validation_is_int", "must be an integer"),
		})
	}
	return id, nil
}

// pageQuery reads the optional page and size query parameters. Absent values
// stay zero and fall back to the pagination defaults downstream.
func pageQuery(r *http.Request) (int, int, error) {
	query := r.URL.Query()
	fieldErrs := validation.Errors{}

	values := lo.Map([]string{"page", "size"}, func(key string, _ int) int {
		raw := query.Get(key)
		if raw == "" {
			return 0
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs[key] = validation.NewError("validation_is_int", "must be an integer")
		}
		return v
	})

	if len(fieldErrs) > 0 {
		return 0, 0, invalidArgument(fieldErrs)
	}
	return values[0], values[1], nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	st := status.Convert(err)

	body := errorBody{
		Code:    st.Code().String(),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		if badRequest, ok := detail.(*errdetails.BadRequest); ok {
			for _, v := range badRequest.GetFieldViolations() {
				body.Violations = append(body.Violations, fieldViolation{
					Field:       v.GetField(),
					Description: v.GetDescription(),
				})
			}
		}
	}

	writeJSON(w, runtime.HTTPStatusFromCode(st.Code()), body)
}
