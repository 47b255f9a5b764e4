package k8s

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// criticalPriorityClasses are the priority classes the pod quota is
// scoped to. Operator pods run in these classes; the quota caps how
// many of them the namespace may hold.
var criticalPriorityClasses = []string{
	"system-node-critical",
	"system-cluster-critical",
}

// ApplyResourceQuota creates or updates a ResourceQuota in the
// namespace capping the pod count, scoped to the critical priority
// classes.
func (c *Client) ApplyResourceQuota(ctx context.Context, namespace, name string, podLimit int) error {
	quota := newPodQuota(namespace, name, podLimit)

	quotas := c.clientset.CoreV1().ResourceQuotas(namespace)

	_, err := quotas.Create(ctx, quota, metav1.CreateOptions{})
	if err == nil {
		return nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create resource quota %s/%s: %w", namespace, name, err)
	}

	existing, err := quotas.Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("failed to get resource quota %s/%s: %w", namespace, name, err)
	}

	existing.Spec = quota.Spec
	if _, err := quotas.Update(ctx, existing, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update resource quota %s/%s: %w", namespace, name, err)
	}

	return nil
}

// newPodQuota builds the quota resource.
func newPodQuota(namespace, name string, podLimit int) *corev1.ResourceQuota {
	return &corev1.ResourceQuota{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: corev1.ResourceQuotaSpec{
			Hard: corev1.ResourceList{
				corev1.ResourcePods: *resource.NewQuantity(int64(podLimit), resource.DecimalSI),
			},
			ScopeSelector: &corev1.ScopeSelector{
				MatchExpressions: []corev1.ScopedResourceSelectorRequirement{
					{
						ScopeName: corev1.ResourceQuotaScopePriorityClass,
						Operator:  corev1.ScopeSelectorOpIn,
						Values:    criticalPriorityClasses,
					},
				},
			},
		},
	}
}
