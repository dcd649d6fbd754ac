package enums

const (
	SEARCH_SCOPE_MESSAGES = "messages"
	SEARCH_SCOPE_LISTINGS = "listings"
	SEARCH_SCOPE_ALL      = "all"
)
