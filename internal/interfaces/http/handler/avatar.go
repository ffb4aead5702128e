package handler

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"unicode"

	"github.com/Olpagroup25/insa/internal/application/partner"
	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var avatarColors = []string{
	"#0b4f8a", "#2e7d32", "#c62828", "#6a1b9a",
	"#ef6c00", "#00838f", "#5d4037", "#37474f",
}

// AvatarHandler draws partner avatars as initials on a coloured square
type AvatarHandler struct {
	BaseHandler
	partnerService *partner.PartnerService
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(partnerService *partner.PartnerService) *AvatarHandler {
	return &AvatarHandler{partnerService: partnerService}
}

// Partner godoc
// @ID           getPartnerAvatar
// @Summary      Partner avatar
// @Description  128px SVG avatar of a partner. Unknown partners get a placeholder.
// @Tags         shop
// @Produce      image/svg+xml
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {string} string "SVG image"
// @Router       /web/image/res.partner/{id}/avatar_128 [get]
func (h *AvatarHandler) Partner(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		h.write(c, uuid.Nil, "")
		return
	}

	p, err := h.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		if !shared.IsNotFound(err) {
			h.HandleError(c, err)
			return
		}
		h.write(c, uuid.Nil, "")
		return
	}

	h.write(c, p.ID, p.Name)
}

func (h *AvatarHandler) write(c *gin.Context, id uuid.UUID, name string) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml", []byte(avatarSVG(id, name)))
}

// avatarSVG renders up to two initials of name. An empty name gives a grey placeholder.
func avatarSVG(id uuid.UUID, name string) string {
	color := "#9e9e9e"
	text := initials(name)
	if text != "" {
		color = avatarColors[int(id[len(id)-1])%len(avatarColors)]
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128" viewBox="0 0 128 128">`+
		`<rect width="128" height="128" fill="%s"/>`+
		`<text x="50%%" y="50%%" dy=".35em" text-anchor="middle" font-family="sans-serif" font-size="52" fill="#fff">%s</text>`+
		`</svg>`, color, html.EscapeString(text))
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
