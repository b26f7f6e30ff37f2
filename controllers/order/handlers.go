package orderControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// currentUser reads the authenticated user stored by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// CreateOrderHandler places an order and responds with the checkout URL.
func CreateOrderHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.Error(apperror.Unauthorized("User not found"))
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}

		checkoutURL, err := svc.CreateOrder(c.Request.Context(), models.OrderUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}, req, c.ClientIP())
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"data":    checkoutURL,
		})
	}
}

func GetOrdersHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.GetOrders(c.Request.Context(), c.Query("email"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order retrieved successfully",
			"data":    orders,
		})
	}
}

func UpdateOrderStatusHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}

		order, err := svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated successfully!",
			"data":    order,
		})
	}
}

func OrderRevenueHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := svc.OrderRevenue(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Revenue calculated successfully",
			"data":    gin.H{"totalRevenue": total},
		})
	}
}

// VerifyPaymentHandler reconciles a payment by transaction or order id.
func VerifyPaymentHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.VerifyPayment(c.Request.Context(), c.Query("order_id"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order verified successfully",
			"data":    records,
		})
	}
}

// VerifyPaymentPublicHandler is the unauthenticated variant used by the
// frontend right after a gateway redirect.
func VerifyPaymentPublicHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("order_id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Order ID is required",
				"data":    []any{},
			})
			return
		}

		records, err := svc.VerifyPayment(c.Request.Context(), orderID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order verified successfully",
			"data":    records,
		})
	}
}

// callbackTranID pulls the transaction id from wherever the gateway put
// it; callbacks arrive as GET or POST and sometimes carry only val_id.
func callbackTranID(c *gin.Context) string {
	for _, v := range []string{
		c.Query("tran_id"),
		c.PostForm("tran_id"),
		c.Query("val_id"),
		c.PostForm("val_id"),
	} {
		if v != "" {
			return v
		}
	}
	return ""
}

// PaymentIPNHandler handles the gateway's server-to-server notification.
// Always answers 200 so the gateway stops retrying.
func PaymentIPNHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tranID := c.PostForm("tran_id"); tranID != "" {
			if _, err := svc.VerifyPayment(c.Request.Context(), tranID); err != nil {
				fmt.Println("IPN verification error:", err)
			}
		}
		c.String(http.StatusOK, "IPN Received")
	}
}

// PaymentSuccessHandler verifies best-effort and always redirects the
// customer back to the frontend.
func PaymentSuccessHandler(svc *Service, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tranID := callbackTranID(c)
		if tranID == "" {
			c.Redirect(http.StatusFound, frontendURL+"/cart/payment?error=no_transaction_id")
			return
		}

		if _, err := svc.VerifyPayment(c.Request.Context(), tranID); err != nil {
			fmt.Println("Error verifying payment:", err)
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("%s/cart/payment?tran_id=%s&status=success", frontendURL, tranID))
	}
}

func PaymentFailHandler(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tranID := callbackTranID(c)
		if tranID == "" {
			c.Redirect(http.StatusFound, frontendURL+"/cart/payment?error=no_transaction_id&status=failed")
			return
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/cart/payment?tran_id=%s&status=failed", frontendURL, tranID))
	}
}

func PaymentCancelHandler(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tranID := callbackTranID(c)
		if tranID == "" {
			c.Redirect(http.StatusFound, frontendURL+"/cart/payment?error=no_transaction_id&status=cancelled")
			return
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/cart/payment?tran_id=%s&status=cancelled", frontendURL, tranID))
	}
}
