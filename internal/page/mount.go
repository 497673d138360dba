package page

import (
	"errors"

	"github.com/vaultpass/passgen/internal/dom"
)

// AppID is the id of the container hosts mount the view into.
const AppID = "app"

var ErrNoContainer = errors.New("a container is required to mount the app")

// Mount appends the view's root to container.
func Mount(container *dom.Element, v View) error {
	if container == nil {
		return ErrNoContainer
	}
	container.Append(v.Root())
	return nil
}

// NewDocument returns a body element holding an empty mount container.
func NewDocument() (body, app *dom.Element) {
	app = dom.NewElement("div").SetAttr("id", AppID)
	body = dom.NewElement("body").Append(app)
	return body, app
}
