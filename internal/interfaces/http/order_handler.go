package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/shophub/shophub-api/internal/application/dto"
	"github.com/shophub/shophub-api/internal/application/order"
	"github.com/shophub/shophub-api/internal/domain/entity"
)

// OrderHandler handles checkout, order reads and the admin status update.
type OrderHandler struct {
	create *order.CreateOrderUseCase
	orders *order.UseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(create *order.CreateOrderUseCase, orders *order.UseCase) *OrderHandler {
	return &OrderHandler{create: create, orders: orders}
}

func orderList(orders []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponseFrom(o))
	}
	return out
}

// Create godoc
// @Summary      Place an order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Cart, shipping and payment reference"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.create.Create(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderResponseFrom(o))
}

// List godoc
// @Summary      List orders (own; all for admins)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context(), GetUserID(c), IsAdmin(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(orderList(orders))
}

// GetByID godoc
// @Summary      Get one order
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	o, err := h.orders.Get(c.Context(), c.Params("id"), GetUserID(c), IsAdmin(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.OrderResponseFrom(o))
}

// Receipt godoc
// @Summary      Download the order receipt PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Order id"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.orders.Receipt(c.Context(), id, GetUserID(c), IsAdmin(c))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, entity.ShortID(id)))
	return c.Send(data)
}

// UpdateStatus godoc
// @Summary      Update order status (admin)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Order id"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "New status, optional tracking number and note"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.orders.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.OrderResponseFrom(o))
}
