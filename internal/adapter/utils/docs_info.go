// @title           Startup Advisor API
// @version         1.0
// @description     Retrieval-augmented startup advice: knowledge-base chat with stage filtering, plus image and document analysis.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1
// @schemes   http https
package utils

//run qdrant
//docker run -p 6333:6333 -p 6334:6334 -v vectorDBData:/qdrant/storage qdrant/qdrant

//optional answer cache
//docker run -p 6379:6379 -d redis

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
