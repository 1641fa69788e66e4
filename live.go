package formrules

import (
	"fmt"

	"github.com/fasthttp/websocket"
	"github.com/michaelolof/formrules/cont"
	"github.com/valyala/fasthttp"
)

// LiveHandler validates records sent over a websocket, for forms that show errors while
// the user types. Every text frame must hold a JSON object; the reply to each frame is the
// body Handler would have sent for it. A malformed frame gets the error handler's body
// and the connection stays open. Binary frames are ignored.
func LiveHandler(v *Validator, opts ...Option) fasthttp.RequestHandler {
	o := newHandlerOptions(opts)
	upgrader := websocket.FastHTTPUpgrader{
		CheckOrigin: o.checkOrigin,
	}

	return func(ctx *fasthttp.RequestCtx) {
		err := upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
			defer conn.Close()
			conn.SetReadLimit(o.maxRequestSize)

			for {
				mt, msg, err := conn.ReadMessage()
				if err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						o.logger.Warn("live validation connection dropped", "error", err)
					}
					return
				}
				if mt != websocket.TextMessage {
					continue
				}

				if err := conn.WriteMessage(websocket.TextMessage, o.liveReply(v, msg)); err != nil {
					o.logger.Warn("live validation write failed", "error", err)
					return
				}
			}
		})
		if err != nil {
			o.logger.Warn("websocket upgrade failed", "error", err)
		}
	}
}

func (o *handlerOptions) liveReply(v *Validator, msg []byte) []byte {
	rec, err := cont.DecodeRecord(msg)
	if err != nil {
		_, body := o.errHandler(fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return body
	}
	return v.Validate(rec).resultJSON()
}
