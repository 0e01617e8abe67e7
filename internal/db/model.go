// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Content, PublishedAt, ImageFile string
	}
	ArticleCategory struct {
		ArticleID, CategoryID string

		Article, Category string
	}
	Category struct {
		ID, Name string
	}
	User struct {
		ID, Username, PasswordHash string
	}
}{
	Article: struct {
		ID, Title, Content, PublishedAt, ImageFile string
	}{
		ID:          "id",
		Title:       "title",
		Content:     "content",
		PublishedAt: "published_at",
		ImageFile:   "image_file",
	},
	ArticleCategory: struct {
		ArticleID, CategoryID string

		Article, Category string
	}{
		ArticleID:  "article_id",
		CategoryID: "category_id",

		Article:  "Article",
		Category: "Category",
	},
	Category: struct {
		ID, Name string
	}{
		ID:   "id",
		Name: "name",
	},
	User: struct {
		ID, Username, PasswordHash string
	}{
		ID:           "id",
		Username:     "username",
		PasswordHash: "password_hash",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleCategory struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleCategory: struct {
		Name, Alias string
	}{
		Name:  "article_category",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "category",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int        `pg:"id,pk"`
	Title       string     `pg:"title,use_zero"`
	Content     string     `pg:"content,use_zero"`
	PublishedAt *time.Time `pg:"published_at"`
	ImageFile   *string    `pg:"image_file"`
}

type ArticleCategory struct {
	tableName struct{} `pg:"article_category,alias:t,discard_unknown_columns"`

	ArticleID  int `pg:"article_id,pk"`
	CategoryID int `pg:"category_id,pk"`

	Article  *Article  `pg:"fk:article_id,rel:has-one"`
	Category *Category `pg:"fk:category_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"category,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int    `pg:"id,pk"`
	Username     string `pg:"username,use_zero"`
	PasswordHash string `pg:"password_hash,use_zero"`
}

// ArticleCategoryRow is one row of an article left-joined to its categories.
// CategoryID and CategoryName are nil for an article without categories.
type ArticleCategoryRow struct {
	ID           int        `pg:"id"`
	Title        string     `pg:"title"`
	Content      string     `pg:"content"`
	PublishedAt  *time.Time `pg:"published_at"`
	ImageFile    *string    `pg:"image_file"`
	CategoryID   *int       `pg:"category_id"`
	CategoryName *string    `pg:"category_name"`
}
