package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// call выполняет запрос и декодирует ответ с учетом обертки data
func (c *Client) call(ctx context.Context, req Request, out interface{}) error {
	var raw json.RawMessage
	if err := c.Do(ctx, req, &raw); err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrapData(raw), out); err != nil {
		c.log.Error("call: %s %s - failed to decode payload: %v", req.Method, req.Path, err)
		return &APIError{
			Kind:    KindDecode,
			Message: "Erreur: réponse invalide du serveur",
			Cause:   err,
		}
	}
	return nil
}

// escape экранирует сегмент пути
func escape(segment fmt.Stringer) string {
	return url.PathEscape(segment.String())
}
