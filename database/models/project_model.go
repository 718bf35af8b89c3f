package models

type Project struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null"`
	Slug        string `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_owner_slug"`
	Description string `json:"description" gorm:"type:text"`
	// identity of the user owning the project. Every read and every review is scoped to it.
	OwnerID string `json:"ownerId" gorm:"type:text;not null;index;uniqueIndex:idx_project_owner_slug"`

	Messages []Message `json:"messages" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (m Project) TableName() string {
	return "projects"
}

func (m Project) IsOwnedBy(userID string) bool {
	return userID != "" && m.OwnerID == userID
}
