package docs

// @title 作品集分析服务 API
// @version 1.0
// @description 创作者作品集的分析与排行服务：热门内容选择、关键词分析、行业分类、代表作排行
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
