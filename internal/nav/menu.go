package nav

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/showcase/internal/command"
	"github.com/Faultbox/showcase/internal/logger"
	"github.com/Faultbox/showcase/internal/page"
)

// CommandOpenMenu is the registry name of the menu toggle.
const CommandOpenMenu = "openMenu"

// ToggleMenu flips the open class on the nav element.
func ToggleMenu(doc *page.Document) error {
	navEl, err := doc.MustQuery(NavSelector)
	if err != nil {
		return fmt.Errorf("toggle menu: %w", err)
	}
	open := navEl.Classes.Toggle(ClassOpen)
	logger.Info("menu toggled", zap.Bool("open", open))
	return nil
}

// RegisterMenu publishes ToggleMenu for doc as CommandOpenMenu.
func RegisterMenu(reg *command.Registry, doc *page.Document) error {
	return reg.Register(CommandOpenMenu, func() error {
		return ToggleMenu(doc)
	})
}
