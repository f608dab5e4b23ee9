package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderCreator — короткое имя отправителя, от имени которого идёт запрос.
const HeaderCreator = "X-Creator"

// ParseUUIDParam — path-параметр как UUID; ok=false для пустого, кривого или нулевого id.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Creator — отправитель из заголовка X-Creator (без пробелов по краям).
func Creator(c *gin.Context) (string, bool) {
	creator := strings.TrimSpace(c.GetHeader(HeaderCreator))
	return creator, creator != ""
}
