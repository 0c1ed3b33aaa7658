package routes_test

import (
	"net/url"

	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
)

var firstPage = pagination.Request{Number: 1, Size: pagination.DefaultPageSize}

func carSearch(model string) search.Criteria {
	return search.Cars(url.Values{"model": {model}})
}
