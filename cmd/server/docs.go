package main

//go:generate swag init -g cmd/server/main.go -o docs -d ../../,../../internal/handlers

// @title           Series Dashboard API
// @version         1.0
// @description     Fee, ownership and subscription reporting over series_data, plus a read-only SQL assistant.
// @host            localhost:8080
// @BasePath        /api
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
