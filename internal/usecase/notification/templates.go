package notification

import (
	"fmt"

	"agrimarket-backend/internal/domain/contract"
)

const (
	TypeContractUpdate   = "CONTRACT_UPDATE"
	TypePaymentAlert     = "PAYMENT_ALERT"
	TypeRiskWarning      = "RISK_WARNING"
	TypeDeliveryTracking = "DELIVERY_TRACKING"
)

func ContractUpdateMessage(contractID string, status contract.Status) string {
	switch status {
	case contract.StatusActive:
		return fmt.Sprintf("Good news! Contract %s has been accepted. Payment is secured in escrow.", contractID)
	case contract.StatusCompleted:
		return fmt.Sprintf("Success! Contract %s is complete. Funds have been released to your wallet.", contractID)
	case contract.StatusCancelled:
		return fmt.Sprintf("Alert: Contract %s was cancelled. Please check the dashboard for details.", contractID)
	default:
		return fmt.Sprintf("Update: Contract %s is now %s.", contractID, status)
	}
}

func PaymentAlertMessage(amount float64, credit bool) string {
	if credit {
		return fmt.Sprintf("Payment alert: ₹%.2f has been credited to your account.", amount)
	}
	return fmt.Sprintf("Payment alert: ₹%.2f has been debited from your account.", amount)
}

func RiskAlertMessage(crop, riskFactor string) string {
	return fmt.Sprintf("URGENT: High risk of '%s' detected for your %s crop. Please view the app for mitigation advice.", riskFactor, crop)
}

func DeliveryUpdateMessage(location string) string {
	return fmt.Sprintf("Logistics update: Your shipment has reached %s.", location)
}
