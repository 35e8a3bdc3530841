package dto

type Filter struct {
	Limit int64 `query:"limit"`
	Page  int64 `query:"page"`
}
