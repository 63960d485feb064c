package main

// @title           AnimAI Studio API
// @version         1.0
// @description     API do chat de geração de animações matemáticas e científicas

// @contact.name   API Support
// @contact.email  support@animai.studio

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
