package request

type ListLotsQuery struct {
	Search string `form:"search" binding:"max=100"`
}
