package model

/*

ArticleTag is a "many-to-many" relation of an article carrying a tag

ArticleID: article id
TagID: tag id

*/

type ArticleTag struct {
	ArticleID string `gorm:"primaryKey"`
	TagID     string `gorm:"primaryKey"`
}
