package main

// @title Customer Reviews API
// @version 1.0
// @description Review submission, moderation and publication service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	Execute()
}
