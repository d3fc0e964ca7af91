package webapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb/stor"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/labstack/echo/v4"
)

type AttackController struct {
	attackStor     stor.AttackStor
	attackTypeStor stor.AttackTypeStor
	factory        *attack.Factory
}

func NewAttackController(attackStor stor.AttackStor, attackTypeStor stor.AttackTypeStor, factory *attack.Factory) *AttackController {
	return &AttackController{attackStor: attackStor, attackTypeStor: attackTypeStor, factory: factory}
}

// AttackResponse is the JSON form of every attack variant.
type AttackResponse struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Power       int    `json:"power"`
	Accuracy    int    `json:"accuracy"`
	Element     string `json:"element"`
	Description string `json:"description"`
}

func toAttackResponse(a attack.Attack) AttackResponse {
	attrs := a.Attrs()
	return AttackResponse{
		ID:          attrs.ID,
		Type:        a.Type(),
		Name:        attrs.Name,
		Power:       attrs.Power,
		Accuracy:    attrs.Accuracy,
		Element:     attrs.Element,
		Description: attrs.Description,
	}
}

func (c *AttackController) ListAttacks(ctx echo.Context) error {
	attacks, err := c.attackStor.ListAttacks()
	if err != nil {
		return err
	}

	resp := make([]AttackResponse, 0, len(attacks))
	for _, a := range attacks {
		resp = append(resp, toAttackResponse(a))
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *AttackController) GetAttack(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid attack id")
	}

	a, found, err := c.attackStor.GetAttackByID(id)
	switch {
	case err != nil:
		return err
	case !found:
		return echo.NewHTTPError(http.StatusNotFound, "no such attack")
	default:
		return ctx.JSON(http.StatusOK, toAttackResponse(a))
	}
}

func (c *AttackController) CreateAttack(ctx echo.Context) error {
	var req struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		Power       int    `json:"power"`
		Accuracy    int    `json:"accuracy"`
		Element     string `json:"element"`
		Description string `json:"description"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	a, err := c.factory.Instantiate(req.Type, 0, req.Name, req.Power, req.Accuracy, req.Element, req.Description)
	switch {
	case errors.Is(err, attack.ErrUnknownAttackType):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	created, err := c.attackStor.CreateAttack(a)
	switch {
	case err != nil:
		return err
	case !created:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown attack type '"+req.Type+"'")
	}

	log.WithFields(log.Fields{"id": a.Attrs().ID, "type": a.Type()}).Infof("Created attack %s", req.Name)
	return ctx.JSON(http.StatusCreated, toAttackResponse(a))
}

func (c *AttackController) ListAttackTypes(ctx echo.Context) error {
	attackTypes, err := c.attackTypeStor.ListAttackTypes()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, attackTypes)
}
