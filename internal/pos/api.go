package pos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/pkg/utils"
)

// RegisterRoutes exposes the terminal engine over a local HTTP surface so
// the POS front end drives checkout, reversal and stock operations through
// one process.
func RegisterRoutes(rg *gin.RouterGroup, store *Store) {
	rg.POST("/checkout", checkoutHandler(store))
	rg.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.VisibleOrders())
	})
	rg.DELETE("/orders/:id", func(c *gin.Context) {
		store.DeleteOrder(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})
	rg.POST("/history/clear", func(c *gin.Context) {
		if err := store.ClearHistory(); err != nil {
			utils.LogError(err, "ClearHistory failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to clear history view.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": true})
	})

	rg.GET("/ingredients", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Ingredients())
	})
	rg.POST("/ingredients", func(c *gin.Context) {
		var ing models.Ingredient
		if err := c.ShouldBindJSON(&ing); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveIngredient(c.Request.Context(), ing))
	})
	rg.DELETE("/ingredients/:id", func(c *gin.Context) {
		store.DeleteIngredient(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	rg.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Products())
	})
	rg.GET("/products/:id/cost", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cost": store.ProductCost(c.Param("id"))})
	})
	rg.POST("/products", func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveProduct(c.Request.Context(), p))
	})
	rg.DELETE("/products/:id", func(c *gin.Context) {
		store.DeleteProduct(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	rg.POST("/stock/entries", stockEntryHandler(store))
	rg.POST("/stock/losses", stockLossHandler(store))
	rg.GET("/stock/low", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.LowStockIngredients())
	})
	rg.GET("/stock/movements", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.StockMovements())
	})

	rg.GET("/revenues", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Revenues())
	})
	rg.POST("/revenues", func(c *gin.Context) {
		var rev models.Revenue
		if err := c.ShouldBindJSON(&rev); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveRevenue(c.Request.Context(), rev))
	})
	rg.DELETE("/revenues/:id", func(c *gin.Context) {
		store.DeleteRevenue(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	rg.GET("/expenses", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Expenses())
	})
	rg.POST("/expenses", func(c *gin.Context) {
		var exp models.Expense
		if err := c.ShouldBindJSON(&exp); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveExpense(c.Request.Context(), exp))
	})
	rg.DELETE("/expenses/:id", func(c *gin.Context) {
		store.DeleteExpense(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	rg.GET("/employees", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Employees())
	})
	rg.POST("/employees", func(c *gin.Context) {
		var emp models.Employee
		if err := c.ShouldBindJSON(&emp); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveEmployee(c.Request.Context(), emp))
	})
	rg.DELETE("/employees/:id", func(c *gin.Context) {
		store.DeleteEmployee(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	rg.GET("/customers", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Customers())
	})
	rg.POST("/customers", func(c *gin.Context) {
		var cust models.Customer
		if err := c.ShouldBindJSON(&cust); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, store.SaveCustomer(c.Request.Context(), cust))
	})
	rg.DELETE("/customers/:id", func(c *gin.Context) {
		store.DeleteCustomer(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})
}

func checkoutHandler(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}

		processed, err := store.ProcessOrder(c.Request.Context(), order)
		if err != nil {
			if errors.Is(err, ErrEmptyOrder) || errors.Is(err, ErrMissingCustomerName) {
				utils.RespondValidationFailed(c, err.Error())
				return
			}
			utils.LogError(err, "checkout failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process order.", "Internal error"))
			return
		}
		c.JSON(http.StatusCreated, processed)
	}
}

func stockEntryHandler(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IngredientID string  `json:"ingredientId" binding:"required"`
			Quantity     float64 `json:"quantity" binding:"required,gt=0"`
			UnitCost     float64 `json:"unitCost"`
			Reason       string  `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}

		err := store.AddStockEntry(c.Request.Context(), req.IngredientID, req.Quantity, req.UnitCost, req.Reason)
		if err != nil {
			if errors.Is(err, ErrIngredientNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Ingredient not found.", ""))
				return
			}
			utils.LogError(err, "stock entry failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register stock entry.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"applied": true})
	}
}

func stockLossHandler(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IngredientID string  `json:"ingredientId" binding:"required"`
			Quantity     float64 `json:"quantity" binding:"required,gt=0"`
			Reason       string  `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondValidationFailed(c, err.Error())
			return
		}

		err := store.RegisterLoss(c.Request.Context(), req.IngredientID, req.Quantity, req.Reason)
		if err != nil {
			if errors.Is(err, ErrIngredientNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Ingredient not found.", ""))
				return
			}
			utils.LogError(err, "loss registration failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register loss.", "Internal error"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"applied": true})
	}
}
