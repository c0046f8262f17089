package repository

import (
	"database/sql"

	"portfolio_insights/db"
	"portfolio_insights/models"
	"portfolio_insights/utils"
)

// MySQLProfileStore 创作者资料库的MySQL实现
type MySQLProfileStore struct{}

func NewProfileStore() *MySQLProfileStore {
	return &MySQLProfileStore{}
}

// GetByUserID 查询创作者资料，没有记录时返回 (nil, nil)，
// 资料缺失属于正常情况而不是错误
func (s *MySQLProfileStore) GetByUserID(userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, nil
	}

	row := db.DB.QueryRow(`SELECT user_id, display_name, avatar_url, headline, experience_years
	                       FROM profiles WHERE user_id = ?`, userID)

	p := &models.Profile{}
	var displayName, avatarURL, headline sql.NullString
	var experienceYears sql.NullInt64
	if err := row.Scan(&p.UserID, &displayName, &avatarURL, &headline, &experienceYears); err != nil {
		if utils.IsSQLNoRowsError(err) {
			return nil, nil
		}
		return nil, err
	}

	p.DisplayName = displayName.String
	p.AvatarURL = avatarURL.String
	p.Headline = headline.String
	p.ExperienceYears = int(experienceYears.Int64)
	return p, nil
}
