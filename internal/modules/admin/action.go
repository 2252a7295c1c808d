package admin

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoSelection   = errors.New("no items selected")
	ErrNotEditable   = errors.New("field is not editable from the list")
)

// Action is a bulk operation over selected rows. Updates are written to every
// selected row that exists.
type Action struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Updates     map[string]any `json:"-"`
	// Message formats the outcome, e.g. "Published: 3".
	Message string `json:"-"`
}

// PublishActions are the default actions of models with an is_published column.
var PublishActions = []Action{
	{
		Name:        "publish",
		Description: "Publish selected objects",
		Updates:     map[string]any{"is_published": true},
		Message:     "Published: %d",
	},
	{
		Name:        "unpublish",
		Description: "Unpublish selected objects",
		Updates:     map[string]any{"is_published": false},
		Message:     "Unpublished: %d",
	},
}

// ActionResult reports how many selected rows an action matched.
type ActionResult struct {
	Action  string `json:"action"`
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// run applies the action to ids inside one transaction. The count is the number
// of selected ids that exist, whether or not their values changed.
func (a Action) run(db *gorm.DB, model any, ids []uint) (ActionResult, error) {
	if len(ids) == 0 {
		return ActionResult{}, ErrNoSelection
	}
	var matched int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(model).Where("id IN ?", ids).Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return nil
		}
		return tx.Model(model).Where("id IN ?", ids).Updates(a.Updates).Error
	})
	if err != nil {
		return ActionResult{}, fmt.Errorf("action %s: %w", a.Name, err)
	}
	return ActionResult{Action: a.Name, Count: matched, Message: fmt.Sprintf(a.Message, matched)}, nil
}
