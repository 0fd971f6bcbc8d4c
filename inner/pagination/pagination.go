// Package pagination строит страницу результата по LIMIT/OFFSET выборке
// и общему количеству строк, вместе с окном навигации по номерам страниц.
package pagination

import "math"

// PageInfo страница результата с метаданными для навигации
type PageInfo[T any] struct {
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
	Size     int   `json:"size"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
	List     []T   `json:"list"`

	PrePage         int  `json:"prePage"`
	NextPage        int  `json:"nextPage"`
	IsFirstPage     bool `json:"isFirstPage"`
	IsLastPage      bool `json:"isLastPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`

	NavigatePages     int   `json:"navigatePages"`
	NavigatepageNums  []int `json:"navigatepageNums"`
	NavigateFirstPage int   `json:"navigateFirstPage"`
	NavigateLastPage  int   `json:"navigateLastPage"`
} // @name PageInfo

// Offset смещение первой строки страницы, pageNum начинается с 1.
// При переполнении возвращает math.MaxInt: такая страница просто пустая.
func Offset(pageNum, pageSize int) int {
	if pageNum < 1 || pageSize <= 0 {
		return 0
	}
	if pageNum-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (pageNum - 1) * pageSize
}

// TotalPages количество страниц для total строк
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// New собирает PageInfo. Страница за пределами диапазона не ошибка:
// list пустой, pageNum остаётся запрошенным.
func New[T any](list []T, total int64, pageNum, pageSize, navigatePages int) PageInfo[T] {
	if list == nil {
		list = []T{}
	}
	pages := TotalPages(total, pageSize)

	page := PageInfo[T]{
		PageNum:       pageNum,
		PageSize:      pageSize,
		Size:          len(list),
		Total:         total,
		Pages:         pages,
		List:          list,
		NavigatePages: navigatePages,
	}

	page.NavigatepageNums = navigatePageNums(pageNum, pages, navigatePages)
	if n := len(page.NavigatepageNums); n > 0 {
		page.NavigateFirstPage = page.NavigatepageNums[0]
		page.NavigateLastPage = page.NavigatepageNums[n-1]
	}

	page.IsFirstPage = pageNum == 1
	page.IsLastPage = pageNum == pages || pages == 0
	page.HasPreviousPage = pageNum > 1
	page.HasNextPage = pageNum < pages
	if page.HasPreviousPage {
		page.PrePage = pageNum - 1
	}
	if page.HasNextPage {
		page.NextPage = pageNum + 1
	}
	return page
}

// navigatePageNums окно из width номеров страниц вокруг pageNum,
// прижатое к первой и последней странице
func navigatePageNums(pageNum, pages, width int) []int {
	if pages <= 0 || width <= 0 {
		return []int{}
	}
	// за последней страницей окно строится как для последней
	pageNum = min(pageNum, pages)
	if pages <= width {
		nums := make([]int, pages)
		for i := range nums {
			nums[i] = i + 1
		}
		return nums
	}

	start := pageNum - width/2
	end := pageNum + width/2
	switch {
	case start < 1:
		start = 1
	case end > pages:
		start = pages - width + 1
	}

	nums := make([]int, width)
	for i := range nums {
		nums[i] = start + i
	}
	return nums
}
