package main

// @title           BudgetBuddy API
// @version         1.0
// @description     Budget tracking and savings challenge backend for students
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
