package handlers

import (
	applog "neotech/internal/log"
	"neotech/internal/repos"
	"neotech/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Prods  *repos.ProductRepo
	Cats   *repos.CategoryRepo
	Orders *repos.OrderRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Prods.ListAll()
	if err != nil {
		return err
	}
	categories, err := h.Cats.List()
	if err != nil {
		return err
	}
	orders, err := h.Orders.ListLatest(30)
	if err != nil {
		return err
	}
	return render(c, "admin", fiber.Map{
		"Products": products, "Categories": categories, "Orders": orders,
	})
}

// POST /admin/products/create
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing name")
	}
	price := validate.Price(c.FormValue("price"))
	catID, _ := validate.ID(c.FormValue("category_id"))
	if err := h.Prods.Create(name, price, catID, c.FormValue("image"), c.FormValue("description")); err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not create product")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"name": name})
	return c.Redirect("/admin")
}

// POST /admin/products/update/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing name")
	}
	price := validate.Price(c.FormValue("price"))
	catID, _ := validate.ID(c.FormValue("category_id"))
	active := c.FormValue("active") != ""
	if err := h.Prods.Update(id, name, price, catID, c.FormValue("image"), c.FormValue("description"), active); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update product")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// GET /admin/products/delete/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	if err := h.Prods.Delete(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// POST /admin/categories/create
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing name")
	}
	if err := h.Cats.Create(name); err != nil {
		applog.Error(c, "admin.categories.create.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not create category")
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"name": name})
	return c.Redirect("/admin")
}

// POST /admin/categories/update/:id
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing name")
	}
	if err := h.Cats.Update(id, name); err != nil {
		applog.Error(c, "admin.categories.update.fail", err, map[string]any{"category_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update category")
	}
	applog.Audit(c, "admin.categories.update", map[string]any{"category_id": id})
	return c.Redirect("/admin")
}

// GET /admin/categories/delete/:id — products referencing the category keep
// their category_id; nothing cascades.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	if err := h.Cats.Delete(id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"category_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete category")
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category_id": id})
	return c.Redirect("/admin")
}

// POST /admin/orders/status/:id — accepts any status string the form sends.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || status == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing id or status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin")
}
