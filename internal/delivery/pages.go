package delivery

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

const htmlDocsPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Catalog Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
    </style>
</head>
<body>
    <h1>Catalog Service API Endpoints</h1>

    <h2>Products API</h2>
    <ul>
        <li><span class="method">GET</span> <code><a href="/api/products">/api/products</a></code> - List all products.</li>
        <li><span class="method">GET</span> <code>/api/products/{id}</code> - Retrieve a product by its ID (e.g., <a href="/api/products/1">/api/products/1</a>).</li>
        <li><span class="method">POST</span> <code>/api/products</code> - Create a product. JSON body: <code>{"name": "string", "description": "string", "price": float64}</code></li>
        <li><span class="method">PUT</span> <code>/api/products/{id}</code> - Replace a product. Same JSON body as create.</li>
        <li><span class="method">DELETE</span> <code>/api/products/{id}</code> - Delete a product by its ID.</li>
    </ul>

    <h2>Operations</h2>
    <ul>
        <li><span class="method">GET</span> <code><a href="/">/</a></code> - Browser client for the products API.</li>
        <li><span class="method">GET</span> <code><a href="/healthz">/healthz</a></code> - Database health.</li>
        <li><span class="method">GET</span> <code><a href="/metrics">/metrics</a></code> - Prometheus metrics.</li>
    </ul>
</body>
</html>
`

type Pinger interface {
	PingContext(ctx context.Context) error
}

func serveDocsPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlDocsPageContent))
}

// RegisterServiceRoutes mounts the browser client, the endpoint list and the health check.
func RegisterServiceRoutes(router gin.IRouter, db Pinger) error {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return err
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	router.StaticFS("/static", http.FS(assets))
	router.GET("/docs", serveDocsPage)
	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable: "+err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return nil
}
