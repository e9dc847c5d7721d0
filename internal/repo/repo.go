package repo

import (
	"gorm.io/gorm"

	"github.com/libin99527/newapi-checkin/internal/domain"
	bindingrepo "github.com/libin99527/newapi-checkin/internal/repo/binding-repo"
	drawrepo "github.com/libin99527/newapi-checkin/internal/repo/draw-repo"
)

type Repositories struct {
	BindingRepo *bindingrepo.Repository
	DrawRepo    *drawrepo.Repository
}

// New migrates the local schema and builds the repositories over it.
func New(db *gorm.DB) (*Repositories, error) {
	if err := db.AutoMigrate(&domain.Binding{}, &domain.LotteryDraw{}); err != nil {
		return nil, err
	}

	return &Repositories{
		BindingRepo: bindingrepo.New(db),
		DrawRepo:    drawrepo.New(db),
	}, nil
}
