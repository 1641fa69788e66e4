package formrules

import (
	"github.com/valyala/fasthttp"
)

// FastHandler serves v over fasthttp with the same contract as Handler.
func FastHandler(v *Validator, opts ...Option) fasthttp.RequestHandler {
	o := newHandlerOptions(opts)

	return func(ctx *fasthttp.RequestCtx) {
		rec, err := o.decodeBody(string(ctx.Request.Header.ContentType()), ctx.PostBody())
		if err != nil {
			o.logger.Warn("form decode failed", "path", string(ctx.Path()), "error", err)
			status, body := o.errHandler(err)
			writeFastJSON(ctx, status, body)
			return
		}

		errs := v.Validate(rec)
		writeFastJSON(ctx, resultStatus(errs), errs.resultJSON())
	}
}

func writeFastJSON(ctx *fasthttp.RequestCtx, status int, body []byte) {
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
