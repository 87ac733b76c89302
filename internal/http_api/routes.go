package http_api

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	s.router.GET("/", s.index)
	s.router.POST("/login", s.login)
	s.router.GET("/setup-admin", s.setupAdmin)
	s.router.POST("/tatum-webhook", s.tatumWebhook)

	api := s.router.Group("/api", s.authMiddleware())
	api.GET("/wallets", s.listWallets)
	api.POST("/wallets", s.createWallet)
	api.PUT("/wallets/:id", s.updateWallet)
	api.DELETE("/wallets/:id", s.deleteWallet)
}
