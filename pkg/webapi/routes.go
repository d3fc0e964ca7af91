package webapi

import (
	"github.com/ensai-tp/attackdb/pkg/atkdb/stor"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/labstack/echo/v4"
)

func SetupRoutes(e *echo.Echo, stors *stor.Stors, factory *attack.Factory) {
	g := e.Group("/api")

	attackController := NewAttackController(stors.AttackStor, stors.AttackTypeStor, factory)
	g.GET("/attacks", attackController.ListAttacks)
	g.GET("/attacks/:id", attackController.GetAttack)
	g.POST("/attacks", attackController.CreateAttack)
	g.GET("/attack-types", attackController.ListAttackTypes)
}
