package controllers

import (
	"net/http"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := utils.DecodeJSONBody(r, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func searchQuery(r *http.Request) *requests.SearchQuery {
	query := r.URL.Query()
	return &requests.SearchQuery{
		Q:      strings.TrimSpace(query.Get(constvars.QueryParamQ)),
		Status: query.Get(constvars.QueryParamStatus),
	}
}
