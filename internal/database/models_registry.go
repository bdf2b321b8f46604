package database

import "inkwell/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostReaction{},
		&models.CommentReaction{},
		&models.Bookmark{},
		&models.Follow{},
	}
}
