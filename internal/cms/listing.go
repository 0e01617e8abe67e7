package cms

import "github.com/daniilsolovey/cms/internal/db"

// FoldRows folds article rows left-joined to categories into one entry per
// article. Articles keep their first-seen order and category names keep row
// order. The NULL category row of an article without categories is dropped,
// leaving an empty CategoryNames.
func FoldRows(rows []db.ArticleCategoryRow) ListedArticles {
	result := ListedArticles{}
	positions := make(map[int]int)

	for i := range rows {
		row := &rows[i]

		pos, ok := positions[row.ID]
		if !ok {
			pos = len(result)
			positions[row.ID] = pos
			result = append(result, ListedArticle{
				Article: Article{
					ID:          row.ID,
					Title:       row.Title,
					Content:     row.Content,
					PublishedAt: FormatPublishedAt(row.PublishedAt),
					ImageFile:   row.ImageFile,
				},
				CategoryNames: []string{},
			})
		}

		if row.CategoryName != nil {
			result[pos].CategoryNames = append(result[pos].CategoryNames, *row.CategoryName)
		}
	}

	return result
}
