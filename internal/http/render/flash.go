package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Josue-Ribero/meraki-sub000/internal/http/flash"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/middleware"
	"github.com/Josue-Ribero/meraki-sub000/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
